// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

// MediaKind is the media type of an m= section, such as audio or video.
type MediaKind string

// Common media kinds
const (
	MediaKindAudio       MediaKind = "audio"
	MediaKindVideo       MediaKind = "video"
	MediaKindApplication MediaKind = "application"
)

func (k MediaKind) String() string {
	return string(k)
}

const maxPort = 65535

// SessionObject is a parsed SDP session reduced to the fields needed for
// plain RTP transports.
type SessionObject struct {
	Media      []*MediaObject
	Connection *ConnectionObject
}

// MediaObject describes a single m= section.
type MediaObject struct {
	Type       MediaKind
	Port       int
	Connection *ConnectionObject
	SSRCs      []SSRCObject
}

// ConnectionObject describes a c= line.
type ConnectionObject struct {
	IP      string
	Version int
}

// SSRCObject is an RFC 5576 a=ssrc line:
// a=ssrc:<ssrc-id> <attribute>[:<value>]
type SSRCObject struct {
	ID        uint32
	Attribute string
	Value     string
}

// NewConnectionObject validates and returns a ConnectionObject.
func NewConnectionObject(ip string, version int) (*ConnectionObject, error) {
	if ip == "" {
		return nil, ErrEmptyIP
	}
	if version != 4 && version != 6 {
		return nil, ErrInvalidIPVersion
	}

	return &ConnectionObject{IP: ip, Version: version}, nil
}

// NewMediaObject validates and returns a MediaObject. connection may be nil,
// in which case the session level connection applies.
func NewMediaObject(kind MediaKind, port int, connection *ConnectionObject, ssrcs ...SSRCObject) (*MediaObject, error) {
	if kind == "" {
		return nil, ErrEmptyMediaKind
	}
	if port < 0 || port > maxPort {
		return nil, ErrInvalidPort
	}

	m := &MediaObject{
		Type:       kind,
		Port:       port,
		Connection: connection,
	}
	if len(ssrcs) > 0 {
		m.SSRCs = append([]SSRCObject(nil), ssrcs...)
	}

	return m, nil
}

// NewSSRCObject returns an SSRCObject for the given id and attribute.
func NewSSRCObject(id uint32, attribute, value string) SSRCObject {
	return SSRCObject{ID: id, Attribute: attribute, Value: value}
}
