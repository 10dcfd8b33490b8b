package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme       = "data:"
	base64Suffix = ";base64"
	imagePrefix  = "image/"
)

var (
	ErrMalformed = errors.New("malformed data url")
	ErrNotImage  = errors.New("data url is not an image")
	ErrNotBase64 = errors.New("data url is not base64 encoded")
)

type DataURL struct {
	MediaType string
	Data      []byte
}

// ParseImage разбирает data:image/<fmt>;base64,<payload>.
func ParseImage(raw string) (*DataURL, error) {
	rest, ok := strings.CutPrefix(raw, scheme)
	if !ok {
		return nil, ErrMalformed
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrMalformed
	}

	mediaType, ok := strings.CutSuffix(header, base64Suffix)
	if !ok {
		return nil, ErrNotBase64
	}
	if !strings.HasPrefix(mediaType, imagePrefix) || len(mediaType) == len(imagePrefix) {
		return nil, ErrNotImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(data) == 0 {
		return nil, ErrMalformed
	}

	return &DataURL{
		MediaType: mediaType,
		Data:      data,
	}, nil
}

func Encode(mediaType string, data []byte) string {
	return scheme + mediaType + base64Suffix + "," + base64.StdEncoding.EncodeToString(data)
}
