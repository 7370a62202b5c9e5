package service

// AvatarProvider derives a user's avatar URL from their email.
type AvatarProvider interface {
	AvatarURL(email string) string
}
