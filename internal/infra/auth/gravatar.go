package auth

import (
	"crypto/md5" //nolint:gosec // gravatar addresses images by md5 of the email
	"encoding/hex"
	"net/url"
	"strings"

	"recipebook/internal/domain/service"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// gravatarProvider builds Gravatar URLs: 200px, pg rating, mystery-person fallback.
type gravatarProvider struct {
	query string
}

// NewGravatarProvider creates the avatar provider used at registration.
func NewGravatarProvider() service.AvatarProvider {
	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")

	return &gravatarProvider{query: q.Encode()}
}

func (p *gravatarProvider) AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?" + p.query
}
