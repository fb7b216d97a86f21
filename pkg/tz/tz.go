package tz

import "time"

// Budapest is the Europe/Budapest location (CET/CEST with automatic DST).
// Event times are displayed in café-local time.
var Budapest *time.Location

func init() {
	var err error
	Budapest, err = time.LoadLocation("Europe/Budapest")
	if err != nil {
		panic("tz: load Europe/Budapest: " + err.Error())
	}
}
