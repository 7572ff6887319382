// Command orgcall issues tenant-scoped calls against the API gateway using the
// same request pipeline as the web client: correlation id, bearer token and
// active organization are stamped onto every private API call, and failures
// are printed as a single "code: message" line.
//
// Usage:
//
//	orgcall [-org ID] whoami
//	orgcall [-org ID] products [-page N] [-size N] [-q TEXT]
//	orgcall [-org ID] product ID
//	orgcall [-org ID] get PATH
//	orgcall health
//
// With -metrics the request counters are written to stderr in the Prometheus
// text format after the command finishes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/dmitrymomot/orgclient/pkg/activeorg"
	"github.com/dmitrymomot/orgclient/pkg/apiclient"
	"github.com/dmitrymomot/orgclient/pkg/apierror"
	"github.com/dmitrymomot/orgclient/pkg/catalog"
	"github.com/dmitrymomot/orgclient/pkg/config"
	"github.com/dmitrymomot/orgclient/pkg/logger"
	"github.com/dmitrymomot/orgclient/pkg/redis"
	"github.com/dmitrymomot/orgclient/pkg/token"
)

// Config is the complete process configuration.
type Config struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	OrgID  string `env:"ORG_ID"`
	Client apiclient.Config
	Token  token.Config
	Redis  redis.Config
}

var errUsage = errors.New("usage: orgcall [-org ID] whoami | products [-page N] [-size N] [-q TEXT] | product ID | get PATH | health")

func main() {
	org := flag.String("org", "", "Active organization id (overrides ORG_ID)")
	dumpMetrics := flag.Bool("metrics", false, "Write request metrics to stderr on exit")
	flag.Parse()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "orgcall: %v\n", err)
		os.Exit(2)
	}
	if *org != "" {
		cfg.OrgID = *org
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(cfg.Env, "orgcall"),
		logger.WithRequestContext(),
	)

	var metricsOut io.Writer
	if *dumpMetrics {
		metricsOut = os.Stderr
	}

	if err := run(ctx, cfg, log, flag.Args(), os.Stdout, metricsOut); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, apierror.Render(err))
		os.Exit(1)
	}
}

// run executes one command. When metricsOut is non-nil the pipeline metrics
// are written to it before returning, whether or not the command failed.
func run(ctx context.Context, cfg Config, log *slog.Logger, args []string, out, metricsOut io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	storage, probe, closeStorage, err := newStorage(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeStorage()

	if args[0] == "health" {
		if err := probe(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "session store: ok (%s)\n", storageKind(cfg.Redis))
		return err
	}

	orgs := activeorg.NewStore(storage, activeorg.WithLogger(log))
	if cfg.OrgID != "" {
		if err := orgs.Set(ctx, cfg.OrgID); err != nil {
			return err
		}
	}

	src, err := token.NewSource(ctx, cfg.Token)
	if err != nil {
		return err
	}
	if session, ok := src.(token.Session); ok {
		if err := session.Login(ctx, token.LoginOptions{}); err != nil {
			return err
		}
		defer func() { _ = session.Logout(context.WithoutCancel(ctx), token.LogoutOptions{}) }()
	}

	transport, err := apiclient.NewHTTPTransport(cfg.Client)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	if metricsOut != nil {
		defer func() { _ = writeMetrics(metricsOut, reg) }()
	}

	api := apiclient.New(transport,
		apiclient.WithTokenSource(src),
		apiclient.WithTenantStore(orgs),
		apiclient.WithLogger(log),
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
	)
	cat := catalog.New(api)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "whoami":
		who, err := cat.WhoAmI(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, who)

	case "products":
		fs := flag.NewFlagSet("products", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		page := fs.Int("page", 0, "zero-based page")
		size := fs.Int("size", catalog.DefaultPageSize, "page size")
		q := fs.String("q", "", "search text")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		res, err := cat.ListProducts(ctx, *page, *size, *q)
		if err != nil {
			return err
		}
		return printJSON(out, res)

	case "product":
		if len(rest) != 1 {
			return errUsage
		}
		p, err := cat.GetProduct(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(out, p)

	case "get":
		if len(rest) != 1 {
			return errUsage
		}
		resp, err := api.DoFresh(ctx, apiclient.NewRequest(http.MethodGet, rest[0], nil), cfg.Token.MinValidity)
		if err != nil {
			return err
		}
		_, err = out.Write(resp.Body)
		return err

	default:
		return errUsage
	}
}

// newStorage picks Redis when configured and process memory otherwise. The
// returned probe checks that the store is reachable.
func newStorage(ctx context.Context, cfg redis.Config) (activeorg.Storage, func(context.Context) error, func(), error) {
	if !cfg.Enabled() {
		return activeorg.NewMemoryStorage(), func(context.Context) error { return nil }, func() {}, nil
	}
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	storage, err := activeorg.NewRedisStorage(client, cfg.SessionID, cfg.SessionTTL)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}
	return storage, redis.Healthcheck(client, cfg.ConnectTimeout), func() { _ = client.Close() }, nil
}

func storageKind(cfg redis.Config) string {
	if cfg.Enabled() {
		return "redis"
	}
	return "memory"
}

// writeMetrics writes every family gathered from reg in the text exposition format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
