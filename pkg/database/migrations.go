package database

import (
	"context"
)

// The UNIQUE (date, "time") constraint on bookings is the real guarantee
// against double-booking; the application-level pre-check only exists for
// a friendlier error message.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	phone TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	type_ar TEXT NOT NULL,
	type_en TEXT NOT NULL,
	price NUMERIC(10,2) NOT NULL,
	reason_ar TEXT,
	reason_en TEXT,
	date DATE NOT NULL,
	"time" TEXT NOT NULL,
	receipt_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT bookings_date_time_key UNIQUE (date, "time")
);

CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date);
`

func Migrate(ctx context.Context, db PgxIface) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}
