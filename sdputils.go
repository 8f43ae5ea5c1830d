// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

const sdpAttributeSSRC = "ssrc"

// sessionObjectFromSDP converts a session parsed by pion/sdp into a SessionObject.
func sessionObjectFromSDP(log logging.LeveledLogger, s *sdp.SessionDescription) (*SessionObject, error) {
	if s == nil {
		return nil, ErrNilSessionDescription
	}

	connection, err := sdpParseConnection(s.ConnectionInformation)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	res := &SessionObject{Connection: connection}
	for i, d := range s.MediaDescriptions {
		if d == nil {
			continue
		}

		media, err := sdpParseMediaObject(log, d)
		if err != nil {
			return nil, fmt.Errorf("media section %d: %w", i, err)
		}
		res.Media = append(res.Media, media)
	}
	log.Tracef("converted session with %d media sections", len(res.Media))

	return res, nil
}

func sdpParseMediaObject(log logging.LeveledLogger, d *sdp.MediaDescription) (*MediaObject, error) {
	connection, err := sdpParseConnection(d.ConnectionInformation)
	if err != nil {
		return nil, err
	}

	ssrcs := make([]SSRCObject, 0)
	for _, a := range d.Attributes {
		if a.Key != sdpAttributeSSRC {
			continue
		}

		ssrc, err := sdpParseSSRCMedia(a)
		if err != nil {
			log.Warnf("ignoring a=ssrc in m=%s: %v", d.MediaName.Media, err)

			continue
		}
		ssrcs = append(ssrcs, ssrc)
	}

	return NewMediaObject(MediaKind(d.MediaName.Media), d.MediaName.Port.Value, connection, ssrcs...)
}

// sdpParseConnection maps a c= line onto a ConnectionObject. A nil line or one
// without an address yields nil so the session level fallback applies.
func sdpParseConnection(c *sdp.ConnectionInformation) (*ConnectionObject, error) {
	if c == nil || c.Address == nil {
		return nil, nil //nolint:nilnil
	}

	var version int
	switch strings.ToUpper(c.AddressType) {
	case "IP4":
		version = 4
	case "IP6":
		version = 6
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAddressType, c.AddressType)
	}

	return NewConnectionObject(c.Address.Address, version)
}

// Parses an RFC 5576 ssrc media attribute. Sample input:
// a=ssrc:<ssrc-id> <attribute>
// a=ssrc:<ssrc-id> <attribute>:<value>
func sdpParseSSRCMedia(a sdp.Attribute) (SSRCObject, error) {
	ssrcStr, rest, ok := strings.Cut(a.Value, " ")
	if !ok || ssrcStr == "" {
		return SSRCObject{}, fmt.Errorf("%w: %s", ErrSSRCAttributeTooShort, a.Value)
	}

	ssrc, err := strconv.ParseUint(ssrcStr, 10, 32)
	if err != nil {
		return SSRCObject{}, fmt.Errorf("%w: %s", ErrInvalidSSRC, ssrcStr)
	}

	attribute, value, _ := strings.Cut(rest, ":")

	return NewSSRCObject(uint32(ssrc), attribute, value), nil
}
