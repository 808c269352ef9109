// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set bind and resolve separately:

	cliparse.BindFlags(cmd.Flags(), &cfg)
	// after parsing
	err := cliparse.Resolve(cmd.Flags(), &cfg)

# CLI Flags

	-p, --port           Server port (default 5000)
	-d, --database-url   Database URL
	-t, --database-type  sqlite, postgres or mysql (default sqlite)
	    --session-ttl    Session lifetime (default 24h)
	    --secure-cookies Secure flag on cookies
	    --env-file       dotenv file (default .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_TTL    → --session-ttl
	SECURE_COOKIES → --secure-cookies

CLI flags take precedence over environment variables, which take
precedence over the dotenv file. A missing dotenv file is not an error.

# Validation

Resolve returns an error if DATABASE_URL is missing, the port is out of
range, the database type is unknown or a value fails to parse.
*/
package cliparse
