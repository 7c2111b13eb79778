package common

// Mode is what the keyboard currently drives.
type Mode int

const (
	Browse Mode = iota
	Renaming
	Confirming
)

func (m Mode) String() string {
	switch m {
	case Renaming:
		return "renaming"
	case Confirming:
		return "confirming"
	default:
		return "browse"
	}
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Mode() Mode
	Dir() string
	Count() int
	ListView() string
	Info() string
	StatusView() string
	DialogView() string
	HelpView() string
}
