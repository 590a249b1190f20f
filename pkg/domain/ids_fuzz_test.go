package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseRegistrationID checks that parsing never panics on arbitrary
// input and that accepted values round-trip through String.
func FuzzParseRegistrationID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE registrations;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseRegistrationID(input)
		if err == nil {
			roundTrip, err2 := ParseRegistrationID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseAllIDs verifies every ID type applies the same validation.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errUser := ParseUserID(input)
		_, errJourney := ParseJourneyID(input)
		_, errLeg := ParseLegID(input)
		_, errReg := ParseRegistrationID(input)
		_, errReq := ParseRequirementID(input)

		if errUser == nil {
			if errJourney != nil || errLeg != nil || errReg != nil || errReq != nil {
				t.Error("inconsistent parsing across ID types")
			}
		} else {
			if errJourney == nil || errLeg == nil || errReg == nil || errReq == nil {
				t.Error("inconsistent rejection across ID types")
			}
		}
	})
}
