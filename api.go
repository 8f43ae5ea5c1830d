// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

import (
	"fmt"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

// API bundles the settings used to turn SDP into SessionObjects.
type API struct {
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// NewAPI Creates a new API object for keeping semi-global settings.
func NewAPI(options ...func(*API)) *API {
	a := &API{}

	for _, o := range options {
		o(a)
	}

	if a.loggerFactory == nil {
		a.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	a.log = a.loggerFactory.NewLogger("sdp")

	return a
}

// WithLoggerFactory allows providing a LoggerFactory to the API.
// If nil is passed the default logger factory is used.
func WithLoggerFactory(f logging.LoggerFactory) func(a *API) {
	return func(a *API) {
		a.loggerFactory = f
	}
}

// ParseSDP unmarshals raw SDP text and converts it into a SessionObject.
func (api *API) ParseSDP(raw string) (*SessionObject, error) {
	parsed := &sdp.SessionDescription{}
	if err := parsed.UnmarshalString(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSDPUnmarshalling, err)
	}

	return api.NewSessionObject(parsed)
}

// NewSessionObject converts an already parsed session description.
func (api *API) NewSessionObject(s *sdp.SessionDescription) (*SessionObject, error) {
	return sessionObjectFromSDP(api.log, s)
}
