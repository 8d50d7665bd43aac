// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/cadence/internal/models"
)

// Normalize projects one raw catalog record into a CanonicalTrack.
//
// Missing fields fall back to documented defaults:
//   - artist: models.UnknownArtist
//   - cover: "" (no cover)
//   - duration: 0
//   - external URL: built from the source and external id
//
// The only failure is a record with no payload (ErrNilRecord), which is a
// caller contract violation rather than upstream data quality.
func Normalize(rec models.RawRecord) (models.CanonicalTrack, error) {
	switch p := rec.Payload.(type) {
	case nil:
		return models.CanonicalTrack{}, fmt.Errorf("normalize %s record: %w", rec.Source, ErrNilRecord)
	case *models.SpotifyTrack:
		if p == nil {
			return models.CanonicalTrack{}, fmt.Errorf("normalize spotify record: %w", ErrNilRecord)
		}
		return normalizeSpotify(p, rec.Raw), nil
	case *models.DeezerTrack:
		if p == nil {
			return models.CanonicalTrack{}, fmt.Errorf("normalize deezer record: %w", ErrNilRecord)
		}
		return normalizeDeezer(p, rec.Raw), nil
	case *models.YouTubeVideo:
		if p == nil {
			return models.CanonicalTrack{}, fmt.Errorf("normalize youtube record: %w", ErrNilRecord)
		}
		return normalizeYouTube(p, rec.Raw), nil
	default:
		return models.CanonicalTrack{}, fmt.Errorf("normalize %s record: unsupported payload %T", rec.Source, p)
	}
}

// NormalizeAll normalizes a batch, skipping records without a payload.
func NormalizeAll(records []models.RawRecord) []models.CanonicalTrack {
	tracks := make([]models.CanonicalTrack, 0, len(records))
	for i := range records {
		t, err := Normalize(records[i])
		if err != nil {
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks
}

func normalizeSpotify(p *models.SpotifyTrack, raw []byte) models.CanonicalTrack {
	names := make([]string, 0, len(p.Artists))
	for _, a := range p.Artists {
		if n := strings.TrimSpace(a.Name); n != "" {
			names = append(names, n)
		}
	}

	var album, cover string
	if p.Album != nil {
		album = strings.TrimSpace(p.Album.Name)
		for _, img := range p.Album.Images {
			if img.URL != "" {
				cover = img.URL
				break
			}
		}
	}

	duration := 0.0
	if p.DurationMS > 0 {
		duration = float64(p.DurationMS) / 1000
	}

	return build(models.SourceSpotify, p.ID, raw, models.CanonicalTrack{
		Title:    strings.TrimSpace(p.Name),
		Artist:   strings.Join(names, ", "),
		Album:    album,
		Duration: duration,
		CoverURL: cover,
	}, p.ExternalURLs["spotify"])
}

func normalizeDeezer(p *models.DeezerTrack, raw []byte) models.CanonicalTrack {
	var artist string
	if p.Artist != nil {
		artist = strings.TrimSpace(p.Artist.Name)
	}

	var album, cover string
	if p.Album != nil {
		album = strings.TrimSpace(p.Album.Title)
		cover = firstNonEmpty(p.Album.CoverBig, p.Album.CoverMedium, p.Album.Cover)
	}

	externalID := ""
	if p.ID > 0 {
		externalID = strconv.FormatInt(p.ID, 10)
	}

	duration := 0.0
	if p.Duration > 0 {
		duration = float64(p.Duration)
	}

	return build(models.SourceDeezer, externalID, raw, models.CanonicalTrack{
		Title:    strings.TrimSpace(p.Title),
		Artist:   artist,
		Album:    album,
		Duration: duration,
		CoverURL: cover,
	}, p.Link)
}

func normalizeYouTube(p *models.YouTubeVideo, raw []byte) models.CanonicalTrack {
	var cover string
	for _, size := range []string{"maxres", "high", "medium", "default"} {
		if thumb, ok := p.Snippet.Thumbnails[size]; ok && thumb.URL != "" {
			cover = thumb.URL
			break
		}
	}

	return build(models.SourceYouTube, p.ID, raw, models.CanonicalTrack{
		Title:    strings.TrimSpace(p.Snippet.Title),
		Artist:   channelArtist(p.Snippet.ChannelTitle),
		Duration: ParseISODuration(p.ContentDetails.Duration),
		CoverURL: cover,
	}, "")
}

// build fills the identity fields shared by every source.
//
//nolint:gocritic // track is a small value assembled by the caller
func build(source models.Source, externalID string, raw []byte, t models.CanonicalTrack, externalURL string) models.CanonicalTrack {
	externalID = strings.TrimSpace(externalID)
	if externalURL == "" {
		externalURL = source.ExternalURL(externalID)
	}

	idPart := externalID
	if idPart == "" {
		idPart = "anon-" + fingerprint(raw, t.Title, t.Artist)
	}

	if t.Artist == "" {
		t.Artist = models.UnknownArtist
	}

	t.ID = string(source) + ":" + idPart
	t.PrimarySource = source
	t.Sources = map[models.Source]models.SourceRef{
		source: {
			ExternalID:  externalID,
			ExternalURL: externalURL,
			Raw:         append([]byte(nil), raw...),
		},
	}
	return t
}

// fingerprint gives id-less records a stable synthetic id.
func fingerprint(raw []byte, title, artist string) string {
	h := fnv.New32a()
	if len(raw) > 0 {
		_, _ = h.Write(raw)
	} else {
		_, _ = h.Write([]byte(title + "\x00" + artist))
	}
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

var channelSuffixes = []string{" - Topic", "VEVO", "Vevo", " Official"}

// channelArtist derives an artist name from a YouTube channel title
// ("Daft Punk - Topic", "DaftPunkVEVO").
func channelArtist(channel string) string {
	name := strings.TrimSpace(channel)
	for _, suffix := range channelSuffixes {
		if trimmed := strings.TrimSpace(strings.TrimSuffix(name, suffix)); trimmed != "" {
			name = trimmed
		}
	}
	return name
}

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseISODuration parses the ISO-8601 durations YouTube returns ("PT4M9S")
// into seconds. Unparseable input yields 0.
func ParseISODuration(s string) float64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var total float64
	units := [4]float64{86400, 3600, 60, 1}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0
		}
		total += v * unit
	}
	return total
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
