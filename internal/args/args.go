// Package args collects the sftptest command line into Parameters.
//
// Options are matched by literal comparison and consumed positionally:
// every option except -no-proxy takes the following token as its value.
package args

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/neoaurion/QSsh/internal/connector"
	"github.com/neoaurion/QSsh/internal/output"
)

const (
	optHost           = "-h"
	optUser           = "-u"
	optPort           = "-p"
	optTimeout        = "-t"
	optSmallFileCount = "-c"
	optBigFileSize    = "-s"
	optPassword       = "-pwd"
	optRemoteDir      = "-d"
	optKeyFile        = "-k"
	optNoProxy        = "-no-proxy"
)

const defaultProgram = "sftptest"

var synopsis = []string{
	"-h <host> -u <user>",
	"-pwd <password> | -k <private key file> [ -p <port> ]",
	"[ -t <timeout> ] [ -c <small file count> ]",
	"[ -d <remote dir> ]",
	"[ -s <big file size in MB> ] [ -no-proxy ]",
}

// Collector turns a raw argument list into Parameters.
type Collector struct {
	arguments []string
	out       *output.Output
}

// Option configures the collector.
type Option func(*Collector)

// WithOutput sets where errors and usage are reported.
func WithOutput(o *output.Output) Option {
	return func(c *Collector) {
		c.out = o
	}
}

// New creates a collector for arguments; arguments[0] is the program name.
func New(arguments []string, opts ...Option) *Collector {
	c := &Collector{
		arguments: arguments,
		out:       output.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect parses the arguments. On failure it prints the error and the
// usage line and returns zero Parameters and false.
func (c *Collector) Collect() (Parameters, bool) {
	params, err := c.Parse()
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) && argErr.Option != "" {
			c.out.Debug("rejected option %q", argErr.Option)
		}
		c.out.Error("%v", err)
		c.PrintUsage()
		return Parameters{}, false
	}
	return params, true
}

// PrintUsage prints the usage line.
func (c *Collector) PrintUsage() {
	c.out.Usage(c.program(), synopsis...)
}

func (c *Collector) program() string {
	if len(c.arguments) == 0 || c.arguments[0] == "" {
		return defaultProgram
	}
	return c.arguments[0]
}

// Parse is Collect without reporting. Errors are *ArgumentError.
func (c *Collector) Parse() (Parameters, error) {
	var (
		p    Parameters
		port int
	)
	s := &scanner{
		args: c.arguments,
		seen: make(map[string]bool),
	}

	// The last token can never be a value-taking option.
	for s.pos = 1; s.pos < len(s.args)-1; s.pos++ {
		if err := s.step(&p, &port); err != nil {
			return Parameters{}, err
		}
	}
	if s.pos == len(s.args)-1 {
		matched, err := s.noProxy(&p.SSH.Options)
		if err != nil {
			return Parameters{}, err
		}
		if !matched {
			return Parameters{}, unknownOption(s.args[s.pos])
		}
	}

	if p.SSH.AuthType == connector.AuthNone {
		return Parameters{}, &ArgumentError{Kind: ErrNoAuth, Message: "No authentication argument given."}
	}
	if p.SSH.Host == "" {
		return Parameters{}, &ArgumentError{Kind: ErrNoHost, Message: "No host given."}
	}
	if p.SSH.User == "" {
		return Parameters{}, &ArgumentError{Kind: ErrNoUser, Message: "No user name given."}
	}

	p.SSH.Port = DefaultPort
	if s.seen[optPort] {
		p.SSH.Port = port
	}
	if !s.seen[optTimeout] {
		p.SSH.Timeout = DefaultTimeout
	}
	if !s.seen[optSmallFileCount] {
		p.SmallFileCount = DefaultSmallFileCount
	}
	if !s.seen[optBigFileSize] {
		p.BigFileSize = DefaultBigFileSize
	}
	if p.RemotePath == "" {
		p.RemotePath = DefaultRemotePath
	} else if !strings.HasSuffix(p.RemotePath, "/") {
		p.RemotePath += "/"
	}

	return p, nil
}

// scanner holds the position and the set of options already given.
type scanner struct {
	args []string
	pos  int
	seen map[string]bool
}

// step consumes the option at the current position.
func (s *scanner) step(p *Parameters, port *int) error {
	if ok, err := s.stringArg(&p.SSH.Host, optHost); ok || err != nil {
		return err
	}
	if ok, err := s.stringArg(&p.SSH.User, optUser); ok || err != nil {
		return err
	}
	if ok, err := s.intArg(port, optPort); ok || err != nil {
		return err
	}
	if ok, err := s.intArg(&p.SSH.Timeout, optTimeout); ok || err != nil {
		return err
	}
	if ok, err := s.intArg(&p.SmallFileCount, optSmallFileCount); ok || err != nil {
		return err
	}
	if ok, err := s.intArg(&p.BigFileSize, optBigFileSize); ok || err != nil {
		return err
	}
	if ok, err := s.stringArg(&p.SSH.Password, optPassword); ok || err != nil {
		if err != nil {
			return err
		}
		if s.seen[optKeyFile] {
			return mutuallyExclusive(optPassword)
		}
		p.SSH.AuthType = connector.AuthPassword
		return nil
	}
	if ok, err := s.stringArg(&p.RemotePath, optRemoteDir); ok || err != nil {
		return err
	}
	if ok, err := s.stringArg(&p.SSH.PrivateKeyFile, optKeyFile); ok || err != nil {
		if err != nil {
			return err
		}
		if s.seen[optPassword] {
			return mutuallyExclusive(optKeyFile)
		}
		p.SSH.AuthType = connector.AuthPublicKey
		return nil
	}
	if ok, err := s.noProxy(&p.SSH.Options); ok || err != nil {
		return err
	}
	return unknownOption(s.args[s.pos])
}

// stringArg consumes opt and its value into dst. Only the password may be
// empty.
func (s *scanner) stringArg(dst *string, opt string) (bool, error) {
	if s.args[s.pos] != opt {
		return false, nil
	}
	if s.seen[opt] {
		return true, givenTwice(opt)
	}
	s.seen[opt] = true

	s.pos++
	*dst = s.args[s.pos]
	if *dst == "" && opt != optPassword {
		return true, emptyArgument(opt)
	}
	return true, nil
}

// intArg consumes opt and its base-10 32-bit integer value into dst.
func (s *scanner) intArg(dst *int, opt string) (bool, error) {
	if s.args[s.pos] != opt {
		return false, nil
	}
	if s.seen[opt] {
		return true, givenTwice(opt)
	}

	s.pos++
	v, err := strconv.ParseInt(strings.TrimSpace(s.args[s.pos]), 10, 32)
	if err != nil {
		return true, notInteger(opt)
	}
	*dst = int(v)
	s.seen[opt] = true
	return true, nil
}

// noProxy matches the -no-proxy flag, which takes no value.
func (s *scanner) noProxy(opts *connector.Options) (bool, error) {
	if s.args[s.pos] != optNoProxy {
		return false, nil
	}
	if s.seen[optNoProxy] {
		return true, &ArgumentError{Kind: ErrGivenTwice, Option: optNoProxy, Message: "proxy setting given twice."}
	}
	*opts |= connector.IgnoreDefaultProxy
	s.seen[optNoProxy] = true
	return true, nil
}
