package tz_test

import (
	"fmt"
	"sort"

	"github.com/maganaluis/tz"
	"github.com/maganaluis/tz/errors"
)

func ExampleParseFixedZone() {
	zone, err := tz.ParseFixedZone("+0530")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(zone.Name(), zone.Offset())
	// Output: UTC+05:30 +05:30
}

func ExampleParseFixedZone_unrecognized() {
	_, err := tz.ParseFixedZone("15::21")
	if unrecognized, ok := errors.AsUnrecognizedTimeZone(err); ok {
		fmt.Println(unrecognized.Input)
	}
	// Output: 15::21
}

func ExampleFixedZone_Compare() {
	zones := []tz.FixedZone{
		tz.FixedZoneFromSeconds("UTC-05:00", -5*3600, 0),
		tz.FixedZoneFromSeconds("UTC+02:00", 2*3600, 0),
		tz.FixedZoneFromSeconds("UTC-08:00", -8*3600, 0),
	}

	// chronological order: the zone whose clock reads furthest ahead sorts first
	sort.Slice(zones, func(i, j int) bool {
		return zones[i].Compare(zones[j]) < 0
	})
	for _, zone := range zones {
		fmt.Println(zone)
	}
	// Output:
	// UTC+02:00
	// UTC-05:00
	// UTC-08:00
}

func ExampleFixedZone_Rename() {
	zone, err := tz.ParseFixedZone("UTC-05")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	est := zone.Rename("EST")
	fmt.Println(zone.Name(), est.Name())
	// Output: UTC-05:00 EST
}
