package config

// Default returns the default configuration: the hours from 08:00 to 20:00
// on a 48 row column, i.e. four rows per hour.
func Default() Config {
	hourStart, hourEnd := 8.0, 20.0
	top, height := 0, 48
	return Config{
		View: View{
			HourStart: &hourStart,
			HourEnd:   &hourEnd,
			Top:       &top,
			Height:    &height,
		},
	}
}
