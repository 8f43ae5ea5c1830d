// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

// findMediaObject returns the first m= section of the given kind.
func findMediaObject(sdpObject *SessionObject, kind MediaKind) (*MediaObject, error) {
	if sdpObject != nil {
		for _, m := range sdpObject.Media {
			if m != nil && m.Type == kind {
				return m, nil
			}
		}
	}

	return nil, &NotFoundError{Kind: kind, Err: ErrMediaSectionNotFound}
}

// resolveConnection picks the media level c= line and falls back to the
// session level one.
func resolveConnection(sdpObject *SessionObject, media *MediaObject) (*ConnectionObject, error) {
	if media.Connection != nil {
		return media.Connection, nil
	}
	if sdpObject.Connection != nil {
		return sdpObject.Connection, nil
	}

	return nil, &MissingConnectionInfoError{Kind: media.Type, Err: ErrMissingConnectionInfo}
}

// ExtractPlainRTPParameters returns the address and port plain RTP should use
// for the m= section of the given kind.
func ExtractPlainRTPParameters(sdpObject *SessionObject, kind MediaKind) (PlainRTPParameters, error) {
	media, err := findMediaObject(sdpObject, kind)
	if err != nil {
		return PlainRTPParameters{}, err
	}

	connection, err := resolveConnection(sdpObject, media)
	if err != nil {
		return PlainRTPParameters{}, err
	}

	return PlainRTPParameters{
		IP:        connection.IP,
		IPVersion: connection.Version,
		Port:      media.Port,
	}, nil
}

// GetRTPEncodings returns the encoding announced by the first a=ssrc line of
// the m= section of the given kind. The result is empty when the section has
// no ssrc.
func GetRTPEncodings(sdpObject *SessionObject, kind MediaKind) ([]RTPEncodingParameters, error) {
	media, err := findMediaObject(sdpObject, kind)
	if err != nil {
		return nil, err
	}

	res := make([]RTPEncodingParameters, 0, 1)
	if len(media.SSRCs) == 0 {
		return res, nil
	}

	// Later lines (other attributes, FID repair streams) are not consulted.
	if ssrc := media.SSRCs[0].ID; ssrc != 0 {
		res = append(res, RTPEncodingParameters{SSRC: ssrc})
	}

	return res, nil
}
