// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

// PlainRTPParameters is the remote address of a plain RTP transport.
type PlainRTPParameters struct {
	IP        string `json:"ip"`
	IPVersion int    `json:"ipVersion"`
	Port      int    `json:"port"`
}

// RTPEncodingParameters describes a single RTP stream. Only the SSRC is
// derived from SDP.
type RTPEncodingParameters struct {
	SSRC uint32 `json:"ssrc"`
}
