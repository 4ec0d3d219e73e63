package cmd

import "strings"

// rootValueFlags are the persistent flags that take a separate value.
var rootValueFlags = map[string]bool{
	"--config":    true,
	"--store-dir": true,
}

// genFlags lists every flag gen accepts, its own and the inherited ones.
// An option value that looks like one of these is a flag, not a value.
var genFlags = map[string]bool{
	"-c": true, "--workdir": true,
	"--engine":  true,
	"--dry-run": true,
	"-o": true, "--option": true,
	"-v": true, "--verbose": true,
	"--config":     true,
	"--store-dir":  true,
	"--timestamps": true,
	"-h": true, "--help": true,
}

// NormalizeArgs rewrites the two-argument option form of gen,
// "-o KEY VALUE" or "--option KEY VALUE", into "--option KEY=VALUE" so the
// flag parser sees a single value. Only arguments following a "gen" or
// "generate" command word are touched, and nothing after "--".
//
// An option whose key already carries "=" passes through. A key followed by
// a flag or by nothing is emitted alone and later dropped by
// variables.Pairs, so "-o name --dry-run" still means a dry run.
func NormalizeArgs(args []string) []string {
	start, ok := genStart(args)
	if !ok {
		return args
	}

	out := make([]string, 0, len(args))
	out = append(out, args[:start]...)

	for i := start; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg != "-o" && arg != "--option" {
			out = append(out, arg)
			continue
		}

		if i+1 >= len(args) {
			out = append(out, arg)
			continue
		}
		key := args[i+1]
		if isFlag(key) {
			// -o with no key at all; the next flag is handled on its own.
			continue
		}
		if strings.Contains(key, "=") || i+2 >= len(args) || isFlag(args[i+2]) {
			out = append(out, "--option", key)
			i++
			continue
		}

		out = append(out, "--option", key+"="+args[i+2])
		i += 2
	}

	return out
}

// genStart returns the index just past the command word when the first
// non-flag argument is gen or generate.
func genStart(args []string) (int, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return 0, false
		case rootValueFlags[arg]:
			i++
		case strings.HasPrefix(arg, "-"):
		case arg == "gen" || arg == "generate":
			return i + 1, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// isFlag reports whether arg is one of gen's flags, in any of the forms
// "--name", "--name=value", "-x" or "-xvalue". Negative numbers are values.
func isFlag(arg string) bool {
	if arg == "--" {
		return true
	}
	if strings.HasPrefix(arg, "--") {
		name, _, _ := strings.Cut(arg, "=")
		return genFlags[name]
	}
	if len(arg) >= 2 && arg[0] == '-' {
		return genFlags[arg[:2]]
	}
	return false
}
