package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robopeter/depop"
	"github.com/robopeter/depop/audio"
	"github.com/robopeter/depop/formats/aiff"
	"github.com/robopeter/depop/formats/flac"
	"github.com/robopeter/depop/formats/mp3"
	"github.com/robopeter/depop/formats/vorbis"
	"github.com/robopeter/depop/formats/wav"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: depop <input.{flac|wav|aiff|mp3|ogg}> <output.wav>")
		os.Exit(1)
	}
	inPath := os.Args[1]
	outPath := os.Args[2]

	// Registry: lossless formats keep their integer PCM through the
	// batch path; lossy formats stream through the float path.
	reg := audio.NewRegistry()
	reg.RegisterInt("flac", flac.Decoder{})
	reg.RegisterInt("wav", wav.Decoder{})
	reg.RegisterInt("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	ext := filepath.Ext(inPath)
	if len(ext) > 0 {
		ext = ext[1:] // drop dot
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open input:", err)
		os.Exit(1)
	}
	defer inFile.Close()

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot create output:", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if dec, ok := reg.GetInt(ext); ok {
		// Batch path: clean raw integer PCM, write WAV with the
		// input's sample rate and bit depth.
		src, err := dec.Decode(inFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "decode failed:", err)
			os.Exit(1)
		}
		defer src.Close()

		if err := depop.CleanToWAV(outFile, src); err != nil {
			if errors.Is(err, audio.ErrNotMono) {
				fmt.Fprintln(os.Stderr, "input has more than one channel; batch cleaning needs a mono file")
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "cleaning failed:", err)
			os.Exit(1)
		}
	} else if dec, ok := reg.Get(ext); ok {
		// Streaming path: lossy input, mixed to mono if needed,
		// written as 16-bit WAV.
		src, err := dec.Decode(inFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "decode failed:", err)
			os.Exit(1)
		}
		defer src.Close()

		if err := depop.CleanToWAV16(outFile, src, 4096); err != nil {
			fmt.Fprintln(os.Stderr, "cleaning failed:", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintln(os.Stderr, "unsupported format:", ext)
		os.Exit(1)
	}

	fmt.Println("Wrote:", outPath)
}
