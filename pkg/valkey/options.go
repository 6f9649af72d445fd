package valkey

import (
	"fmt"
	"time"
)

// Options holds the connection parameters for a Valkey client.
type Options struct {
	Addr           string
	Password       string
	DB             int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PoolSize       int
	MinIdleConns   int
}

// DefaultOptions returns options tuned for a server-side process sitting in
// the hot path of a PDCP entity's handover snapshot writes.
func DefaultOptions() *Options {
	return &Options{
		Addr:           "localhost:6379",
		Password:       "",
		DB:             0,
		ConnectTimeout: 3 * time.Second,
		ReadTimeout:    2 * time.Second,
		WriteTimeout:   2 * time.Second,
		PoolSize:       10,
		MinIdleConns:   2,
	}
}

// InspectorOptions returns options tuned for a read-mostly, latency
// tolerant client such as the bearer inspector TUI.
func InspectorOptions() *Options {
	return &Options{
		Addr:           "localhost:6379",
		Password:       "",
		DB:             0,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		PoolSize:       5,
		MinIdleConns:   1,
	}
}

// WithAddr sets the connection address.
func (o *Options) WithAddr(addr string) *Options {
	o.Addr = addr
	return o
}

// WithPassword sets the auth password.
func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithDB sets the logical database index.
func (o *Options) WithDB(db int) *Options {
	o.DB = db
	return o
}

// WithTimeouts overrides the connect/read/write timeouts.
func (o *Options) WithTimeouts(connect, read, write time.Duration) *Options {
	o.ConnectTimeout = connect
	o.ReadTimeout = read
	o.WriteTimeout = write
	return o
}

// WithPool overrides the connection pool sizing.
func (o *Options) WithPool(poolSize, minIdle int) *Options {
	o.PoolSize = poolSize
	o.MinIdleConns = minIdle
	return o
}

// BuildAddr joins a host and port into a "host:port" address string.
func BuildAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
