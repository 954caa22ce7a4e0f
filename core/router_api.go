package core

import (
	"math/rand/v2"
	"net/http"

	"github.com/segmentio/encoding/json"
)

const jsonContentType = "application/json"

var randIntN = rand.IntN

type randomNumber struct {
	Number int `json:"number"`
}

type userAgent struct {
	UserAgent *string `json:"user_agent"`
}

func jsonResponse(status int, v interface{}) (Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: status, ContentType: jsonContentType, Body: body}, nil
}

// handleRandom returns a uniform integer in [1, 100].
func handleRandom(_ *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return jsonResponse(http.StatusOK, randomNumber{Number: randIntN(100) + 1})
}

// handleUserAgent echoes the first User-Agent header, or null when absent.
func handleUserAgent(_ *Site, req *http.Request, _ map[string]string) (Response, error) {
	var ua userAgent
	if values := req.Header.Values("User-Agent"); len(values) > 0 {
		ua.UserAgent = &values[0]
	}
	return jsonResponse(http.StatusOK, ua)
}
