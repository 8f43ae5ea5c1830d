// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

import (
	"encoding/json"
	"fmt"

	"github.com/pion/randutil"
)

const maxRandomNumber = 10000000

var globalMathRandomGenerator = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals

// Clone returns a deep copy of data made by a JSON round trip. If data is nil,
// defaultValue is returned as is.
func Clone[T any](data *T, defaultValue T) (T, error) {
	if data == nil {
		return defaultValue, nil
	}

	var res T
	raw, err := json.Marshal(data)
	if err != nil {
		return res, &SerializationError{Err: fmt.Errorf("%w: %w", ErrSerialization, err)}
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return res, &SerializationError{Err: fmt.Errorf("%w: %w", ErrSerialization, err)}
	}

	return res, nil
}

// GenerateRandomNumber returns a pseudo random integer within [0, 10000000].
// It is not suitable for anything that needs uniqueness or unpredictability.
func GenerateRandomNumber() int {
	return globalMathRandomGenerator.Intn(maxRandomNumber + 1)
}
