// Command ledgersync mirrors the kiosk's blobs between the configured remote
// backend and a local directory, and prints weekly sales tables.
//
//	ledgersync [-dir ./backup] [-prefix orders_] status|pull|push
//	ledgersync [-date 2024-03-05] report
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"go-street-kiosk/database"
	"go-street-kiosk/ledger"
	"go-street-kiosk/models"
	"go-street-kiosk/reports"
	"go-street-kiosk/syncer"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

type options struct {
	mode   string
	dir    string
	prefix string
	date   string
	loc    *time.Location
}

func main() {
	var (
		dir    = flag.String("dir", "./backup", "local directory mirroring the remote store")
		prefix = flag.String("prefix", "", "only sync keys starting with this prefix")
		date   = flag.String("date", "", "any day of the week to report on (YYYY-MM-DD, default today)")
	)
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	loc, err := time.LoadLocation(getEnv("SHOP_TIMEZONE", "Asia/Kuala_Lumpur"))
	if err != nil {
		log.Fatalf("invalid SHOP_TIMEZONE: %v", err)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ledgersync [flags] status|pull|push|report")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := database.FromEnv()
	remote, closeRemote, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s blob store: %v", cfg.Backend, err)
	}
	defer closeRemote()

	opts := options{mode: flag.Arg(0), dir: *dir, prefix: *prefix, date: *date, loc: loc}
	if err := run(ctx, opts, remote, time.Now(), os.Stdout); err != nil {
		closeRemote()
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, remote database.BlobStore, now time.Time, out io.Writer) error {
	switch opts.mode {
	case "status", "pull", "push":
		local, err := database.NewFileBlobStore(opts.dir)
		if err != nil {
			return err
		}
		return mirror(ctx, opts, remote, local, out)
	case "report":
		return report(ctx, opts, remote, now, out)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

func mirror(ctx context.Context, opts options, remote, local database.BlobStore, out io.Writer) error {
	src, dst, direction := remote, local, "pull"
	if opts.mode == "push" {
		src, dst, direction = local, remote, "push"
	}
	steps, err := syncer.Plan(ctx, src, dst, opts.prefix)
	if err != nil {
		return err
	}
	if err := printPlan(out, direction, steps, opts.loc); err != nil {
		return err
	}
	if opts.mode == "status" {
		fmt.Fprintf(out, "%d of %d blobs would be pulled\n", syncer.Pending(steps), len(steps))
		return nil
	}
	copied, err := syncer.Apply(ctx, src, dst, steps)
	fmt.Fprintf(out, "%sed %d blobs\n", direction, copied)
	return err
}

func printPlan(out io.Writer, direction string, steps []syncer.Step, loc *time.Location) error {
	table := tablewriter.NewWriter(out)
	table.Header("Key", "Direction", "Action", "Reason", "Source Modified", "Destination Modified")
	for _, step := range steps {
		dest := "-"
		if !step.DestTime.IsZero() {
			dest = step.DestTime.In(loc).Format("2006-01-02 15:04:05")
		}
		if err := table.Append(step.Key, direction, string(step.Action), step.Reason,
			step.SourceTime.In(loc).Format("2006-01-02 15:04:05"), dest); err != nil {
			return err
		}
	}
	return table.Render()
}

func report(ctx context.Context, opts options, remote database.BlobStore, now time.Time, out io.Writer) error {
	day := now.In(opts.loc)
	if opts.date != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, opts.date, opts.loc)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		day = parsed
	}
	service := ledger.NewService(remote, log.New(io.Discard, "", 0))
	orders, err := service.LoadSnapshot(ctx, ledger.Resolve(day))
	if err != nil {
		return err
	}
	built := reports.Build(day, orders)

	fmt.Fprintf(out, "%s: %d orders, %d pending, revenue $%.2f\n",
		built.Ledger, built.Summary.Orders, built.Summary.Pending, built.Summary.Revenue)

	dishes := tablewriter.NewWriter(out)
	dishes.Header("Item", "Qty", "Revenue")
	for _, row := range built.ByDish {
		if err := dishes.Append(row.Item, fmt.Sprint(row.Quantity), fmt.Sprintf("%.2f", row.Revenue)); err != nil {
			return err
		}
	}
	if err := dishes.Render(); err != nil {
		return err
	}

	customers := tablewriter.NewWriter(out)
	customers.Header("Date", "Time", "Customer", "Items", "Total", "Status")
	for _, row := range built.ByCustomer {
		if err := customers.Append(row.Date, row.Time, row.Customer, row.Items,
			fmt.Sprintf("%.2f", row.Total), string(row.Status)); err != nil {
			return err
		}
	}
	return customers.Render()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
