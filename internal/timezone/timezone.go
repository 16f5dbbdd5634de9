package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

var clinicTZ = DefaultTimezone

// Configure sets the clinic timezone for the process. Invalid names are
// ignored and the default stays in effect.
func Configure(tz string) {
	if IsValid(tz) {
		clinicTZ = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ClinicLocation is the zone all schedule dates and slot labels live in.
func ClinicLocation() *time.Location {
	return Location(clinicTZ)
}

func Now() time.Time {
	return time.Now().In(ClinicLocation())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
