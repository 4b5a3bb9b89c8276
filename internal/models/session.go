package models

// Session pairs a locally synthesized opaque credential with the profile it
// authenticates. At most one session is live at a time; it is created on
// successful login, restored from durable storage on process start, and
// destroyed on logout.
type Session struct {
	Credential string
	Profile    UserProfile
}
