// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

import (
	"errors"
	"fmt"
)

// Types of NotFoundErrors
var (
	ErrMediaSectionNotFound = errors.New("section not found")
)

// NotFoundError indicates the session has no media section of the requested kind.
type NotFoundError struct {
	Kind MediaKind
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("m=%s %v", e.Kind, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Types of MissingConnectionInfoErrors
var (
	ErrMissingConnectionInfo = errors.New("no connection information in media section or session")
)

// MissingConnectionInfoError indicates neither the media section nor the
// session carries a c= line.
type MissingConnectionInfoError struct {
	Kind MediaKind
	Err  error
}

func (e *MissingConnectionInfoError) Error() string {
	return fmt.Sprintf("m=%s: %v", e.Kind, e.Err)
}

func (e *MissingConnectionInfoError) Unwrap() error {
	return e.Err
}

// Types of SerializationErrors
var (
	ErrSerialization = errors.New("value cannot be cloned")
)

// SerializationError indicates a value could not round-trip through JSON.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Types of construction and conversion errors
var (
	ErrEmptyMediaKind        = errors.New("media kind must not be empty")
	ErrInvalidPort           = errors.New("port must be within 0 and 65535")
	ErrEmptyIP               = errors.New("connection address must not be empty")
	ErrInvalidIPVersion      = errors.New("ip version must be 4 or 6")
	ErrNilSessionDescription = errors.New("session description is nil")
	ErrSDPUnmarshalling      = errors.New("failed to unmarshal SDP")
	ErrUnknownAddressType    = errors.New("unknown connection address type")
	ErrSSRCAttributeTooShort = errors.New("ssrc media attribute too short")
	ErrInvalidSSRC           = errors.New("failed to parse ssrc")
)
