package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marcbeltman/nocache-server/pkg/defaults"
	"github.com/marcbeltman/nocache-server/pkg/manager"
	"github.com/marcbeltman/nocache-server/pkg/server"
)

var (
	port      string
	hostIP    string
	serverDir string
)

func serverInit() {
	rootCmd.Flags().StringVarP(&port, "port", "p", defaults.DefaultPort, "port on which to listen")
	rootCmd.Flags().StringVar(&hostIP, "ip", defaults.DefaultIP, "IP address on which to listen")
	rootCmd.Flags().StringVarP(&serverDir, "directory", "d", defaults.DefaultDirectory, "directory with files to serve")
	for _, name := range []string{"port", "ip", "directory"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

// resolvePort picks the listening port: the positional argument wins over
// the --port flag. A non-integer argument is a startup error, not a
// fallback to the default.
func resolvePort(args []string, flagPort string) (string, error) {
	if len(args) == 0 {
		return flagPort, nil
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("invalid port argument %q: expected an integer", args[0])
	}
	return strconv.Itoa(p), nil
}

func printBanner(out io.Writer, port, dir string) {
	green := color.New(color.FgGreen, color.Bold)
	_, _ = green.Fprintf(out, "Starting no-cache file server on port %s\n", port)
	fmt.Fprintf(out, "Serving files from %s\n", dir)
	fmt.Fprintln(out, "Caching is DISABLED (files will reload on refresh)")
	fmt.Fprintln(out, "Press Ctrl+C to stop")
}

func runServer(cmd *cobra.Command, args []string) error {
	listenPort, err := resolvePort(args, viper.GetString("port"))
	if err != nil {
		return err
	}

	mgr, err := manager.New(viper.GetString("directory"))
	if err != nil {
		return err
	}

	printBanner(os.Stdout, listenPort, mgr.Dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &server.DevServer{
		Port:    listenPort,
		Address: viper.GetString("ip"),
		Manager: mgr,
		Out:     os.Stdout,
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}

	fmt.Println("Server stopped.")
	return nil
}
