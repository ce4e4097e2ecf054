// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command profilectl mints and checks profile identity records.
//
// # Subcommands
//
//	profilectl new -password <pw> -handle <h> -email <e> [-phone <p>]
//	    Mints a full field set (UUIDv7 id, activation token, salt, PBKDF2
//	    digest), runs it through the validation core, and prints the raw
//	    fields as JSON. Output includes hash and salt: it is the storage
//	    payload, not the transport view.
//
//	profilectl check <file|->
//	    Reads raw profile fields as JSON and feeds them through the
//	    validating constructor. Prints the transport view on success;
//	    reports the first violation with its kind and exits 1 on rejection.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/taibuivan/yomira-profile/internal/platform/config"
	"github.com/taibuivan/yomira-profile/internal/platform/fielderr"
	"github.com/taibuivan/yomira-profile/internal/platform/sec"
	"github.com/taibuivan/yomira-profile/internal/profile"
	"github.com/taibuivan/yomira-profile/pkg/uuidv7"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "profilectl"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if level := parseLevel(cfg.LogLevel); level != slog.LevelInfo {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})).With(slog.String("app", "profilectl"))
	}

	// ── 3. Subcommand Dispatch ────────────────────────────────────────────
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "new":
		os.Exit(runNew(log, cfg, os.Args[2:]))
	case "check":
		os.Exit(runCheck(log, os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

// runNew mints a complete, validated field set and prints it as JSON.
func runNew(log *slog.Logger, cfg *config.Config, args []string) int {
	flags := flag.NewFlagSet("new", flag.ExitOnError)
	password := flags.String("password", "", "plain-text password to derive the digest from (required)")
	handle := flags.String("handle", "", "profile at-handle (required)")
	email := flags.String("email", "", "profile email address (required)")
	phone := flags.String("phone", "", "profile phone number (optional)")
	flags.Parse(args)

	if *password == "" || *handle == "" || *email == "" {
		flags.Usage()
		return 2
	}

	// Mint credential material in the formats the validators accept.
	id := uuidv7.New()
	token := sec.NewActivationToken()
	salt := sec.NewSalt()

	hash, err := sec.HashPassword(*password, salt, cfg.PBKDF2Iterations)
	if err != nil {
		log.Error("derive password digest", slog.Any("error", err))
		return 1
	}

	var phonePtr *string
	if *phone != "" {
		phonePtr = phone
	}

	// Run the minted set through the validation core before printing
	// anything, so the tool can never emit an invalid record.
	p, err := profile.New(id, &token, *handle, *email, hash, phonePtr, salt)
	if err != nil {
		logRejection(log, err)
		return 1
	}

	record := rawProfile{
		ID:              p.ID().String(),
		ActivationToken: p.ActivationToken(),
		AtHandle:        p.AtHandle(),
		Email:           p.Email(),
		Hash:            p.Hash(),
		Phone:           p.Phone(),
		Salt:            p.Salt(),
	}
	return printJSON(log, record)
}

// runCheck feeds raw JSON field values through the validating constructor.
func runCheck(log *slog.Logger, args []string) int {
	if len(args) != 1 {
		usage()
		return 2
	}

	data, err := readInput(args[0])
	if err != nil {
		log.Error("read input", slog.Any("error", err))
		return 1
	}

	var raw rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error("decode input", slog.Any("error", err))
		return 1
	}

	p, err := profile.New(raw.ID, raw.ActivationToken, raw.AtHandle, raw.Email, raw.Hash, raw.Phone, raw.Salt)
	if err != nil {
		logRejection(log, err)
		return 1
	}

	log.Info("profile_valid", slog.String(profile.FieldID, p.ID().String()))
	return printJSON(log, p.Transport())
}

// rawProfile is the storage-shaped field set: untrusted strings in, including
// the secret material the transport view omits.
type rawProfile struct {
	ID              string  `json:"profileId"`
	ActivationToken *string `json:"profileActivationToken"`
	AtHandle        string  `json:"profileAtHandle"`
	Email           string  `json:"profileEmail"`
	Hash            string  `json:"profileHash"`
	Phone           *string `json:"profilePhone"`
	Salt            string  `json:"profileSalt"`
}

// logRejection reports a validation failure with its field and kind.
func logRejection(log *slog.Logger, err error) {
	if fe := fielderr.As(err); fe != nil {
		log.Error("profile_rejected",
			slog.String("field", fe.Field),
			slog.String("kind", string(fe.Kind)),
			slog.String("reason", fe.Message),
		)
		return
	}
	log.Error("profile_rejected", slog.Any("error", err))
}

// readInput loads the named file, or stdin when the argument is "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(log *slog.Logger, v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error("encode output", slog.Any("error", err))
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// parseLevel maps a config string to a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: profilectl new -password <pw> -handle <h> -email <e> [-phone <p>]")
	fmt.Fprintln(os.Stderr, "       profilectl check <file|->")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
