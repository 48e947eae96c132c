package tarot

// Options are options for creating a new tarot game. They are read-only for the engine.
type Options struct {
	Mode       Mode
	Deals      int  // number of scored deals in a session. Default: 1
	NoSlam     bool // never ask players to announce a slam
	MaxRedeals int  // void deals in a row before giving up. Default: 100
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Mode:       ModeFour,
		Deals:      1,
		NoSlam:     false,
		MaxRedeals: 100,
	}
}

// Validate returns an error if the options cannot be used to create a game
func (o Options) Validate() error {
	if !o.Mode.Valid() {
		return PlayerCountError(o.Mode)
	}

	return nil
}
