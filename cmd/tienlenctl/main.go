// Command tienlenctl runs the rules engine RPCs locally, for checking plays by hand.
//
//	tienlenctl classify 10D 11D 12D 13D 1D
//	tienlenctl validate -prev "3D 3H" -cur "4D 4H"
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"

	"github.com/yourusername/tienlen-rules/internal/api"
	"github.com/yourusername/tienlen-rules/internal/config"
	"github.com/yourusername/tienlen-rules/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tienlenctl <classify|validate> [flags]")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML rules config")
	verbose := fs.Bool("v", false, "debug logging")
	prev := fs.String("prev", "", "previous play, e.g. \"3D 3H\" (validate)")
	cur := fs.String("cur", "", "current play (validate)")
	triples := fs.String("triples", "", "override triples_enabled: true or false (validate)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, flush, err := logging.NewDevelopment(*verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer flush()

	rpc := api.NewRPC(cfg.Options())
	ctx := context.Background()

	var (
		payload map[string]interface{}
		out     string
	)
	switch args[0] {
	case "classify":
		payload = map[string]interface{}{"hand": splitCards(strings.Join(fs.Args(), " "))}
		out, err = callRPC(ctx, rpc.ClassifyHand, logger, payload)
	case "validate":
		payload = map[string]interface{}{"previous": splitCards(*prev), "current": splitCards(*cur)}
		if *triples != "" {
			enabled, err := strconv.ParseBool(*triples)
			if err != nil {
				return fmt.Errorf("-triples: %w", err)
			}
			payload["triples_enabled"] = enabled
		}
		out, err = callRPC(ctx, rpc.ValidateTurn, logger, payload)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		return err
	}
	return render(args[0], out)
}

func splitCards(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

type rpcFunc func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)

func callRPC(ctx context.Context, fn rpcFunc, logger runtime.Logger, payload map[string]interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return fn(ctx, logger, nil, nil, string(data))
}

func render(command, out string) error {
	var resp map[string]interface{}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	keys := make([]string, 0, len(resp))
	for k := range resp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := pterm.TableData{{"field", "value"}}
	for _, k := range keys {
		if nested, ok := resp[k].(map[string]interface{}); ok {
			for _, nk := range []string{"rank", "strength", "tie_break"} {
				rows = append(rows, []string{k + "." + nk, fmt.Sprint(nested[nk])})
			}
			continue
		}
		rows = append(rows, []string{k, fmt.Sprint(resp[k])})
	}

	pterm.DefaultSection.Println(command)
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
