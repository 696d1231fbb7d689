// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheFunny/async-pixiv/model"
)

const sampleIllustJSON = `{
	"id": 103380324,
	"title": "初雪",
	"type": "illust",
	"image_urls": {
		"square_medium": "https://i.pximg.net/c/360x360_70/img-master/img/2022/12/02/00/00/01/103380324_p0_square1200.jpg",
		"medium": "https://i.pximg.net/c/540x540_70/img-master/img/2022/12/02/00/00/01/103380324_p0_master1200.jpg",
		"large": "https://i.pximg.net/c/600x1200_90/img-master/img/2022/12/02/00/00/01/103380324_p0_master1200.jpg"
	},
	"caption": "",
	"restrict": 0,
	"user": {"id": 137796, "name": "さくしゃ", "account": "sakusha", "is_followed": false},
	"tags": [{"name": "オリジナル", "translated_name": "original"}, {"name": "雪"}],
	"tools": ["CLIP STUDIO PAINT"],
	"create_date": "2022-12-02T00:00:00+09:00",
	"page_count": 1,
	"width": 1447,
	"height": 2047,
	"sanity_level": 2,
	"x_restrict": 0,
	"series": null,
	"meta_single_page": {"original_image_url": "https://i.pximg.net/img-original/img/2022/12/02/00/00/01/103380324_p0.jpg"},
	"meta_pages": [],
	"total_view": 12345,
	"total_bookmarks": 2345,
	"is_bookmarked": false,
	"visible": true,
	"is_muted": false
}`

func TestIllustUnmarshal(t *testing.T) {
	t.Parallel()

	var illust model.Illust

	require.NoError(t, json.Unmarshal([]byte(sampleIllustJSON), &illust))

	assert.Equal(t, uint64(103380324), illust.ID)
	assert.Equal(t, model.TypeIllust, illust.Type)
	assert.Nil(t, illust.Series)
	assert.Equal(t, "original", illust.Tags[0].TranslatedName)
	assert.Equal(t, 2022, illust.CreateDate.Year())
	assert.False(t, illust.IsNSFW())
	assert.False(t, illust.IsR18())
	assert.Equal(t, "https://www.pixiv.net/artworks/103380324", illust.WebURL())
}

func TestIllustFirstPageURL_FallbackChain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		illust model.Illust
		want   string
	}{
		{
			name: "prefers meta single page original",
			illust: model.Illust{
				MetaSinglePage: model.MetaSinglePage{OriginalImageURL: "orig-single"},
				ImageURLs:      model.ImageURLs{Original: "orig", Large: "large"},
			},
			want: "orig-single",
		},
		{
			name: "falls back to bundle original",
			illust: model.Illust{
				ImageURLs: model.ImageURLs{Original: "orig", Large: "large"},
			},
			want: "orig",
		},
		{
			name: "falls back to large",
			illust: model.Illust{
				ImageURLs: model.ImageURLs{Large: "large", Medium: "medium"},
			},
			want: "large",
		},
		{
			name: "falls back to medium",
			illust: model.Illust{
				ImageURLs: model.ImageURLs{Medium: "medium"},
			},
			want: "medium",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.illust.FirstPageURL())
		})
	}
}

func TestIllustAllPageURLs(t *testing.T) {
	t.Parallel()

	multi := model.Illust{
		MetaPages: []model.MetaPage{
			{ImageURLs: model.ImageURLs{Original: "p0-orig", Large: "p0-large"}},
			{ImageURLs: model.ImageURLs{Large: "p1-large"}},
		},
	}
	assert.Equal(t, []string{"p0-orig", "p1-large"}, multi.AllPageURLs())

	single := model.Illust{
		MetaSinglePage: model.MetaSinglePage{OriginalImageURL: "only"},
	}
	assert.Equal(t, []string{"only"}, single.AllPageURLs())
}

func TestIllustIsR18(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		tags []model.Tag
		want bool
	}{
		{"leading R-18", []model.Tag{{Name: "R-18"}, {Name: "original"}}, true},
		{"leading R18 without hyphen", []model.Tag{{Name: "R18"}}, true},
		{"leading R-18G", []model.Tag{{Name: "R-18G"}}, true},
		{"lowercase", []model.Tag{{Name: "r-18"}}, true},
		{"safe", []model.Tag{{Name: "original"}}, false},
		{"no tags", nil, false},
		{"non-leading rating tag ignored", []model.Tag{{Name: "original"}, {Name: "R-18"}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			illust := model.Illust{Tags: tc.tags}
			assert.Equal(t, tc.want, illust.IsR18())
		})
	}
}

func TestIllustIsNSFW(t *testing.T) {
	t.Parallel()

	assert.False(t, (&model.Illust{SanityLevel: 2}).IsNSFW())
	assert.False(t, (&model.Illust{SanityLevel: 4}).IsNSFW())
	assert.True(t, (&model.Illust{SanityLevel: 6}).IsNSFW())
}

func TestParseIllustType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  model.IllustType
	}{
		{"illust", model.TypeIllust},
		{"Illustration", model.TypeIllust},
		{"manga", model.TypeManga},
		{"Ugoira", model.TypeUgoira},
		{"novel", model.TypeNovel},
		{"something else", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, model.ParseIllustType(tc.input))
		})
	}
}
