package models

// ProfileType is the role of a hub user on the platform.
type ProfileType string

// Supported profile types.
const (
	ProfileTypeUser  ProfileType = "USER"
	ProfileTypeStaff ProfileType = "STAFF"
	ProfileTypeAdmin ProfileType = "ADMIN"
)

// ProfileTypes lists every accepted profile type.
var ProfileTypes = []ProfileType{ProfileTypeUser, ProfileTypeStaff, ProfileTypeAdmin}

// Valid reports whether p is one of ProfileTypes.
func (p ProfileType) Valid() bool {
	for _, t := range ProfileTypes {
		if p == t {
			return true
		}
	}
	return false
}
