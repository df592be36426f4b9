// seeduser crea el primer usuario MANAGER directamente en la base de datos.
// Pensado para bootstrap: sin ningún MANAGER nadie puede crear cuentas vía API.
//
// Uso: go run ./cmd/seeduser -username admin -password 'Secret123' [-role MANAGER]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/infrastructure/postgres"
	"github.com/jhoicas/quincaillerie-api/pkg/config"
	"github.com/jhoicas/quincaillerie-api/pkg/password"
)

func main() {
	username := flag.String("username", "", "nombre de usuario (requerido)")
	pwd := flag.String("password", "", "password (requerido)")
	role := flag.String("role", entity.RoleManager, "rol del usuario")
	flag.Parse()

	if *username == "" || *pwd == "" {
		fmt.Fprintln(os.Stderr, "uso: seeduser -username <nombre> -password <password> [-role <rol>]")
		os.Exit(2)
	}
	if !entity.IsValidRole(*role) {
		fmt.Fprintf(os.Stderr, "rol inválido %q; roles válidos: %s\n", *role, strings.Join(entity.ValidRoles, ", "))
		os.Exit(2)
	}
	if valid, violations := password.ValidateStrength(*pwd); !valid {
		fmt.Fprintf(os.Stderr, "password débil: %s\n", strings.Join(violations, "; "))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := password.Hash(*pwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(*username),
		PasswordHash: hash,
		Role:         *role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := postgres.NewUserRepository(pool)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			fmt.Fprintf(os.Stderr, "el usuario %q ya existe\n", user.Username)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("usuario %s creado con rol %s (id %s)\n", user.Username, user.Role, user.ID)
}
