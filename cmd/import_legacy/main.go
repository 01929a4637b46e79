// import_legacy convierte los datos de la aplicación anterior al esquema PostgreSQL.
//
// Entrada: la exportación JSON completa de la base en tiempo real, o una planilla CSV
// de productos guardada desde Excel (-charset windows-1256 para planillas en árabe).
//
// Uso:
//
//	go run ./cmd/import_legacy -in export.json -out seed.sql
//	go run ./cmd/import_legacy -in productos.csv -charset windows-1252 -out seed.sql
//	go run ./cmd/import_legacy -in export.json -apply   # escribe directo en DB_* / DATABASE_URL
//
// Sin -out el SQL se escribe en la salida estándar.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/legacy"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

func main() {
	in := flag.StringP("in", "i", "", "archivo de entrada (.json o .csv)")
	out := flag.StringP("out", "o", "", "archivo SQL de salida (vacío = stdout)")
	charset := flag.String("charset", "utf-8", "charset del CSV: utf-8, windows-1252, windows-1256, iso-8859-1")
	apply := flag.Bool("apply", false, "insertar en PostgreSQL en vez de generar SQL")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "falta -in")
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"}).Component("import")

	snap, err := read(*in, *charset)
	if err != nil {
		log.Fatal().Err(err).Str("file", *in).Msg("leer datos heredados")
	}
	log.Info().
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Int("purchases", len(snap.Purchases)).
		Int("expenses", len(snap.Expenses)).
		Int("repairs", len(snap.Repairs)).
		Msg("datos normalizados")

	if *apply {
		if err := applyToDB(snap); err != nil {
			log.Fatal().Err(err).Msg("importar en PostgreSQL")
		}
		log.Info().Msg("importación aplicada")
		return
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("crear archivo de salida")
		}
		defer f.Close()
		w = f
	}
	if err := postgres.WriteSeedSQL(w, snap); err != nil {
		log.Fatal().Err(err).Msg("escribir SQL")
	}
	if *out != "" {
		log.Info().Str("file", *out).Msg("SQL generado")
	}
}

func read(path, charset string) (*entity.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		products, err := legacy.ParseProductsCSV(f, charset)
		if err != nil {
			return nil, err
		}
		return &entity.Snapshot{Products: products, TakenAt: time.Now()}, nil
	}
	return legacy.ParseExport(f)
}

func applyToDB(snap *entity.Snapshot) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}
	return postgres.ImportSnapshot(ctx, postgres.NewTxRunner(pool), snap)
}
