// Command spritec is the offline sprite compiler: it converts RGBA PNG
// sources drawn in the four recognized palette colors into the 2bpp
// planar tile format consumed by the runtime blitter.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackmiller2708/bit-bound/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compile":
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(os.Stderr, "Usage: spritec compile <sprite.png> [out-dir]")
			os.Exit(1)
		}
		outDir := "."
		if len(args) == 2 {
			outDir = args[1]
		}
		if err := compileSprite(args[0], outDir); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			os.Exit(1)
		}
	case "dir":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: spritec dir <raw-dir> <out-dir>")
			os.Exit(1)
		}
		if err := compileDir(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			os.Exit(1)
		}
	case "view":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: spritec view <sprite_WxH.2bpp>")
			os.Exit(1)
		}
		if err := viewSprite(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			os.Exit(1)
		}
	case "info":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: spritec info <sprite_WxH.2bpp>")
			os.Exit(1)
		}
		if err := spriteInfo(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: spritec <command> <args>

Commands:
  compile <sprite.png> [out-dir]   Compile one PNG to <name>_<W>x<H>.2bpp
  dir     <raw-dir> <out-dir>      Compile every PNG in a directory
  view    <sprite.2bpp>            Render a compiled sprite as ASCII art
  info    <sprite.2bpp>            Show dimensions and tile layout`)
}

func compileSprite(pngPath, outDir string) error {
	f, err := os.Open(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", pngPath, err)
	}

	data, w, h, err := render.EncodeImage(img)
	if err != nil {
		return fmt.Errorf("%s: %w", pngPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(pngPath), ".png")
	outPath := filepath.Join(outDir, render.SpriteFileName(stem, w, h))

	fmt.Printf("Processing: %s -> %s (%d tiles)\n", pngPath, outPath, w/render.TileSize*h/render.TileSize)
	return os.WriteFile(outPath, data, 0o644)
}

func compileDir(rawDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return err
	}

	compiled := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		if err := compileSprite(filepath.Join(rawDir, entry.Name()), outDir); err != nil {
			return err
		}
		compiled++
	}

	fmt.Printf("Compiled %d sprites\n", compiled)
	return nil
}

// viewSprite prints the palette-index grid: '.' for transparent, 1-3 for
// the opaque colors.
func viewSprite(path string) error {
	_, s, err := render.LoadSpriteFile(path)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			idx := s.PixelAt(x, y)
			if idx == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + idx)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	return nil
}

func spriteInfo(path string) error {
	name, s, err := render.LoadSpriteFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d px, %dx%d tiles, %d bytes\n",
		name, s.Width, s.Height, s.TilesX, s.TilesY, len(s.Data))
	return nil
}
