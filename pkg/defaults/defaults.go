package defaults

const (
	DefaultPort      = "8000"    //port used when no argument and no --port flag is given
	DefaultIP        = "0.0.0.0" //bind address, all interfaces
	DefaultDirectory = "."       //directory served when --directory is not set
)
