// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	// Frame decoders for GIF assembly; pixiv serves ugoira frames as JPEG or
	// PNG.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"

	"github.com/TheFunny/async-pixiv/model"
)

// framePalette is the quantization palette for GIF assembly.
var framePalette = palette.Plan9

// Frame is one decoded still of an animated work, in playback position.
type Frame struct {
	// Filename is the frame's name inside the ZIP archive.
	Filename string

	// Data holds the encoded image bytes (JPEG or PNG).
	Data []byte

	// Delay is how long the frame stays on screen.
	Delay time.Duration
}

// Ugoira is a fully downloaded animated work: the frame-timing manifest, the
// raw ZIP archive and the frames extracted from it in manifest order.
type Ugoira struct {
	IllustID uint64
	Metadata model.UgoiraMetadata
	Frames   []Frame
	Archive  []byte
}

// newUgoira pairs the downloaded ZIP archive with its manifest, extracting
// frames in manifest order. Archive entries the manifest does not mention
// are ignored; manifest entries missing from the archive are an error.
func newUgoira(illustID uint64, metadata model.UgoiraMetadata, archive []byte) (*Ugoira, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("failed to open ugoira archive: %w", err)
	}

	contents := make(map[string][]byte, len(reader.File))

	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archived frame %s: %w", file.Name, err)
		}

		data, err := io.ReadAll(rc)
		rc.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to read archived frame %s: %w", file.Name, err)
		}

		contents[file.Name] = data
	}

	frames := make([]Frame, 0, len(metadata.Frames))

	for _, manifestFrame := range metadata.Frames {
		data, ok := contents[manifestFrame.File]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFrame, manifestFrame.File)
		}

		frames = append(frames, Frame{
			Filename: manifestFrame.File,
			Data:     data,
			Delay:    manifestFrame.Duration(),
		})
	}

	return &Ugoira{
		IllustID: illustID,
		Metadata: metadata,
		Frames:   frames,
		Archive:  archive,
	}, nil
}

// Duration returns the total playback time of one animation loop.
func (u *Ugoira) Duration() time.Duration {
	var total time.Duration

	for _, frame := range u.Frames {
		total += frame.Delay
	}

	return total
}

// GIF assembles the frames into an animated GIF and returns the encoded
// stream. Frames are decoded and quantized concurrently.
func (u *Ugoira) GIF() ([]byte, error) {
	var buf bytes.Buffer

	if err := u.EncodeGIF(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeGIF assembles the frames into an animated GIF written to w.
//
// GIF delays have centisecond resolution, coarser than the manifest's
// milliseconds; each delay is rounded to the nearest centisecond.
func (u *Ugoira) EncodeGIF(w io.Writer) error {
	if len(u.Frames) == 0 {
		return fmt.Errorf("%w: archive holds no frames", ErrMissingFrame)
	}

	anim := gif.GIF{
		Image: make([]*image.Paletted, len(u.Frames)),
		Delay: make([]int, len(u.Frames)),
	}

	var group errgroup.Group
	group.SetLimit(downloadConcurrency)

	for i, frame := range u.Frames {
		anim.Delay[i] = int((frame.Delay + 5*time.Millisecond) / (10 * time.Millisecond))

		group.Go(func() error {
			paletted, err := palettedFrame(frame.Data)
			if err != nil {
				return fmt.Errorf("failed to decode frame %s: %w", frame.Filename, err)
			}

			anim.Image[i] = paletted

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("failed to encode GIF: %w", err)
	}

	return nil
}

// palettedFrame decodes an encoded frame and quantizes it to the 256-color
// palette GIF requires, dithering to soften the banding.
func palettedFrame(data []byte) (*image.Paletted, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	paletted := image.NewPaletted(bounds, framePalette)
	draw.FloydSteinberg.Draw(paletted, bounds, src, bounds.Min)

	return paletted, nil
}
