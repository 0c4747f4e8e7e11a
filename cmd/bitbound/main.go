package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackmiller2708/bit-bound/internal/game"
	"github.com/jackmiller2708/bit-bound/internal/memory"
	"github.com/jackmiller2708/bit-bound/internal/render"
	"github.com/jackmiller2708/bit-bound/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	spritesDir  = "assets/sprites"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", defaultAddr, "SSH listen address")
	assets := flag.String("assets", spritesDir, "compiled sprites directory")
	debug := flag.Bool("debug", false, "draw the memory/FPS overlay")
	flag.Parse()

	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	ship, enemy := loadSprites(*assets)

	mem := memory.NewRuntimeMemory()
	fb := render.NewFrameBuffer()
	state, err := game.NewGameState(mem, ship, enemy, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("Game state: %v", err)
	}
	loop := game.NewLoop(mem, fb, state, *debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := loop.Run(ctx); err != nil {
			log.Fatalf("Game loop error: %v", err)
		}
	}()

	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, loop)
	log.Printf("Starting bit-bound — connect with: ssh -p %s player@localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

// loadSprites pulls ship/enemy sprites from the assets directory, falling
// back to the built-in art when the directory or a sprite is missing.
func loadSprites(dir string) (*render.Sprite, *render.Sprite) {
	ship := game.BuiltinShip()
	enemy := game.BuiltinEnemy()

	reg, err := render.NewSpriteRegistry(dir)
	if err != nil {
		log.Printf("Could not load sprites from %s: %v — using built-in art", dir, err)
		return ship, enemy
	}

	if s := reg.Sprite("ship"); s != nil {
		ship = s
	}
	if s := reg.Sprite("enemy"); s != nil {
		enemy = s
	}
	log.Printf("Sprites loaded: %v", reg.Names())
	return ship, enemy
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
