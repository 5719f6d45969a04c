package filesign

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// DefaultTTL is how long a minted file URL stays valid.
const DefaultTTL = time.Hour

type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindLink  Kind = "link"
)

const privateMarker = "/storage/private/"

type claims struct {
	Path string `json:"path"`
	jwt.StandardClaims
}

// Signer mints time-limited access tokens for objects in private
// storage. Public URLs never pass through it.
type Signer struct {
	secret  []byte
	baseURL string
}

func New(secret, baseURL string) *Signer {
	return &Signer{
		secret:  []byte(secret),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Signer) SignedURL(objectPath string, ttl time.Duration) (string, error) {
	if objectPath == "" {
		return "", errors.New("empty object path")
	}
	c := claims{
		Path: objectPath,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			Issuer:    "karya-admin",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("can't sign file token: %w", err)
	}
	return fmt.Sprintf("%s/%s?token=%s", s.baseURL, strings.TrimLeft(objectPath, "/"), signed), nil
}

// Verify returns the object path carried by a token minted with SignedURL.
func (s *Signer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid file token")
	}
	c, ok := token.Claims.(*claims)
	if !ok || c.Path == "" {
		return "", errors.New("invalid file token claims")
	}
	return c.Path, nil
}

// IsPrivate reports whether a file reference points at private storage
// and needs a signed URL before it can be shown.
func IsPrivate(url string) bool {
	if strings.Contains(url, privateMarker) {
		return true
	}
	return !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://")
}

var videoMarkers = []string{"youtube.com", "youtu.be", "vimeo.com"}

// PreviewKind decides how a file reference should be previewed, from
// its extension and a few well-known host markers.
func PreviewKind(url string) Kind {
	lower := strings.ToLower(url)
	for _, m := range videoMarkers {
		if strings.Contains(lower, m) {
			return KindVideo
		}
	}
	ext := path.Ext(strings.SplitN(lower, "?", 2)[0])
	switch ext {
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return KindImage
	case ".mp4", ".mov", ".webm", ".mkv":
		return KindVideo
	default:
		return KindLink
	}
}
