package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-clubadmin/components/dropdowns"
	"github.com/goliatone/go-clubadmin/components/tablewindow"
	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/lookup"
	"github.com/goliatone/go-clubadmin/pkg/renderers/tui"
	"github.com/goliatone/go-clubadmin/pkg/schema"
	"github.com/goliatone/go-clubadmin/pkg/standings"
	"github.com/goliatone/go-clubadmin/pkg/submit"
)

func main() {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	var (
		serve   = flag.Bool("serve", false, "run the component server instead of the interactive console")
		addr    = flag.String("addr", envOr("CLUBADMIN_ADDR", ":8087"), "listen address for -serve")
		baseURL = flag.String("base-url", envOr("CLUBADMIN_API_URL", "http://localhost:3000"), "admin API base URL")
		token   = flag.String("token", os.Getenv("CLUBADMIN_API_TOKEN"), "bearer token for the admin API")
		entity  = flag.String("entity", "news", "entity to submit (see -list)")
		mode    = flag.String("mode", "create", "create, edit or delete")
		id      = flag.String("id", "", "record id for edit and delete")
		table   = flag.String("table", "", "path to a standings JSON file served by -serve")
		team    = flag.String("team", envOr("CLUBADMIN_TEAM", "Banks o' Dee"), "club name fragment for the table window")
		list    = flag.Bool("list", false, "print registered entities and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range submit.DefaultRegistry().List() {
			fmt.Println(name)
		}
		return
	}

	if *serve {
		if err := runServer(*addr, *table, *team); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	if err := runConsole(*baseURL, *token, *entity, form.Mode(*mode), *id); err != nil {
		log.Fatalf("%v", err)
	}
}

// runConsole drives one submission: fetch dropdown options, walk the form in
// the terminal, submit the payload.
func runConsole(baseURL, token, entityName string, mode form.Mode, recordID string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := submit.NewClient(baseURL,
		submit.WithAuthToken(token),
	)
	if err != nil {
		return err
	}

	entity, err := client.Registry().Get(entityName)
	if err != nil {
		return err
	}
	doc := entity.Schema()

	if err := populateDropdowns(ctx, &doc, baseURL, token, entityName); err != nil {
		// Empty dropdowns still render; the operator sees what is missing.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	initial := form.Values{}
	if recordID != "" {
		initial["id"] = recordID
	}
	frm, err := form.New(doc, mode, initial)
	if err != nil {
		return err
	}

	renderer := tui.New()
	values, err := renderer.Run(ctx, frm)
	if err != nil {
		return err
	}
	if recordID != "" {
		values["id"] = recordID
	}

	resp, err := client.Submit(ctx, entityName, mode, values)
	if err != nil {
		return err
	}
	message := resp.Message
	if message == "" {
		message = "Done"
	}
	fmt.Println(message)
	return nil
}

// dropdownEndpoints maps entities to the screen endpoint carrying their
// option lists. Entities without dynamic fields have no entry.
var dropdownEndpoints = map[string]lookup.Endpoint{
	submit.EntityMatch:        lookup.EndpointMatches,
	submit.EntityMatchReport:  lookup.EndpointMatchReports,
	submit.EntityMatchGallery: lookup.EndpointMatchGalleries,
	// Sponsors have no screen of their own; they only need the recentMatches
	// list, which the match-reports screen already serves.
	submit.EntitySponsor: lookup.EndpointMatchReports,
}

func populateDropdowns(ctx context.Context, doc *schema.Schema, baseURL, token, entityName string) error {
	endpoint, ok := dropdownEndpoints[entityName]
	if !ok {
		return nil
	}
	client, err := lookup.NewClient(baseURL, lookup.WithAuthToken(token))
	if err != nil {
		return err
	}
	catalog, err := client.Fetch(ctx, endpoint)
	lookup.Populate(doc, catalog)
	return err
}

// runServer mounts the dropdown and table-window components on a chi router.
func runServer(addr, tablePath, team string) error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	var dropdownOpts []dropdowns.OptionFn
	if secret := os.Getenv("CLUBADMIN_JWT_SECRET"); secret != "" {
		dropdownOpts = append(dropdownOpts, dropdowns.WithGuard(dropdowns.JWTGuard([]byte(secret))))
	}
	if _, err := dropdowns.RegisterRoutes(router, "", dropdownOpts...); err != nil {
		return err
	}

	windowOpts := []tablewindow.OptionFn{tablewindow.WithDefaultTeam(team)}
	if tablePath != "" {
		rows, err := loadStandings(tablePath)
		if err != nil {
			return err
		}
		windowOpts = append(windowOpts, tablewindow.WithRows(rows))
	}
	if _, err := tablewindow.RegisterRoutes(router, "", windowOpts...); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s", addr)
	return server.ListenAndServe()
}

func loadStandings(path string) ([]standings.Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read standings %s: %w", path, err)
	}
	rows, err := standings.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decode standings %s: %w", path, err)
	}
	return rows, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
