package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/planar/lib/go2"
)

// Opts registers flags whose defaults may be overridden by environment variables.
// Flags take precedence over the environment.
type Opts struct {
	Args  []string
	Flags *pflag.FlagSet

	env  *xos.Env
	envs []string
}

func NewOpts(env *xos.Env, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:  args,
		Flags: flags,
		env:   env,
	}
}

// Help lists the flags, then the environment variables backing them.
func (o *Opts) Help() string {
	b := &strings.Builder{}
	o.Flags.SetOutput(b)
	o.Flags.PrintDefaults()
	o.Flags.SetOutput(io.Discard)

	if len(o.envs) > 0 {
		b.WriteString("\nYou may persistently set the following as environment variables (flags take precedence):\n")
		for _, e := range o.envs {
			fmt.Fprintf(b, "- $%s\n", e)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// lookupEnv registers k for Help and returns its value, if set.
// An empty k is a flag without an environment variable.
func (o *Opts) lookupEnv(k string) (string, bool) {
	if k == "" {
		return "", false
	}
	o.envs = append(o.envs, k)
	v := o.env.Getenv(k)
	return v, v != ""
}

func envError(k, expected, found string) error {
	return fmt.Errorf("invalid environment variable %s: expected %s, found %q", k, expected, found)
}

func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	if v, ok := o.lookupEnv(envKey); ok {
		defaultVal = v
	}
	return o.Flags.StringP(flag, shortFlag, defaultVal, usage)
}

func (o *Opts) Int64(envKey, flag, shortFlag string, defaultVal int64, usage string) (*int64, error) {
	if v, ok := o.lookupEnv(envKey); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, envError(envKey, "an integer", v)
		}
		defaultVal = n
	}
	return o.Flags.Int64P(flag, shortFlag, defaultVal, usage), nil
}

// Bool accepts 1, true, 0 and false from the environment.
func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	if v, ok := o.lookupEnv(envKey); ok {
		switch v {
		case "1", "true":
			defaultVal = true
		case "0", "false":
			defaultVal = false
		default:
			return nil, envError(envKey, "a bool", v)
		}
	}
	return o.Flags.BoolP(flag, shortFlag, defaultVal, usage), nil
}

// Enum is a string flag restricted to values. Other values fail Parse.
func (o *Opts) Enum(envKey, flag, shortFlag string, defaultVal string, values []string, usage string) (*string, error) {
	if v, ok := o.lookupEnv(envKey); ok {
		if !go2.Contains(values, v) {
			return nil, envError(envKey, "one of "+strings.Join(values, ", "), v)
		}
		defaultVal = v
	}
	ev := &enumValue{value: defaultVal, values: values}
	o.Flags.VarP(ev, flag, shortFlag, fmt.Sprintf("%s (%s)", usage, strings.Join(values, ", ")))
	return &ev.value, nil
}

type enumValue struct {
	value  string
	values []string
}

func (ev *enumValue) String() string {
	return ev.value
}

func (ev *enumValue) Set(v string) error {
	if !go2.Contains(ev.values, v) {
		return fmt.Errorf("expected one of %s", strings.Join(ev.values, ", "))
	}
	ev.value = v
	return nil
}

func (ev *enumValue) Type() string {
	return "string"
}
