// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings(t *testing.T) {
	t.Parallel()

	settings, err := DecodeSettings(`{"spaceId":"X","deliveryToken":"Y","previewToken":"Z","editorialFeatures":true,"extra":1}`)
	require.NoError(t, err)

	assert.Equal(t, Settings{
		SpaceID:           "X",
		DeliveryToken:     "Y",
		PreviewToken:      "Z",
		EditorialFeatures: true,
	}, settings)
}

func TestDecodeSettings_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		wantErr error
	}{
		{`{"spaceId":"X`, errSettingsNotJSON},
		{``, errSettingsNotJSON},
		{`[1,2]`, errSettingsNotObject},
		{`true`, errSettingsNotObject},
		{`{}`, errSettingsEmpty},
		{` { } `, errSettingsEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeSettings(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettings_EncodeDecode(t *testing.T) {
	t.Parallel()

	want := Settings{SpaceID: "X", DeliveryToken: "Y", PreviewToken: "Z", EditorialFeatures: true}

	got, err := DecodeSettings(want.Encode())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	state := Resolve(newRequest(t, "/", want.Encode()), testDefaults)
	assert.Equal(t, want, state.Settings())
}
