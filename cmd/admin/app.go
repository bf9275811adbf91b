package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/config"
	"github.com/BruksfildServices01/catalog-api/internal/db"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/infra/repository"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/validators"
)

// openStore is swapped in tests.
var openStore = func() (catalog.ClientRepository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	gdb, err := db.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewGormRepository(gdb), nil
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "admin",
		Usage:     "manage catalog-api clients",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:  "client",
				Usage: "client accounts",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "create a client that can log in",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"CLIENT_PASSWORD"}},
							&cli.StringSliceFlag{Name: "role", Usage: "extra role, repeatable"},
						},
						Action: createClient,
					},
					{
						Name:   "list",
						Usage:  "list every client",
						Action: listClients,
					},
				},
			},
		},
	}
}

func createClient(c *cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	email := validators.NormalizeEmail(c.String("email"))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", c.String("email"))
	}
	if len(c.String("password")) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(c.String("password"))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	roles := make([]string, 0, len(c.StringSlice("role")))
	for _, r := range c.StringSlice("role") {
		roles = append(roles, strings.ToUpper(strings.TrimSpace(r)))
	}

	client := &models.Client{
		Name:     strings.TrimSpace(c.String("name")),
		Email:    email,
		Password: hash,
		Roles:    roles,
	}
	client.Roles = client.RoleList()

	if err := store.CreateClient(c.Context, client); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return fmt.Errorf("a client with email %s already exists", email)
		}
		return err
	}

	fmt.Fprintf(c.App.Writer, "created client %d (%s)\n", client.ID, client.Email)
	return nil
}

func listClients(c *cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	clients, err := store.ListClients(c.Context)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLES")
	for i := range clients {
		cl := &clients[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cl.ID, cl.Name, cl.Email, strings.Join(cl.RoleList(), ","))
	}
	return w.Flush()
}
