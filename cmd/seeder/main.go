package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// CatalogEntry is one row of the item master workbook.
type CatalogEntry struct {
	ItemName      string
	CategoryName  string
	MinStockLevel int
	MaxStockLevel int
	SupplierName  string
}

// DeliveryLine is one received lot parsed from a supplier delivery note.
type DeliveryLine struct {
	ItemName   string
	LotNumber  string
	ExpiryDate *time.Time
	Quantity   int
	UnitPrice  decimal.Decimal
}

// CatalogLoader reads the item master workbook.
type CatalogLoader struct {
	logger *slog.Logger
}

func NewCatalogLoader(logger *slog.Logger) *CatalogLoader {
	return &CatalogLoader{logger: logger}
}

// Load reads catalog entries from the first sheet. Expected columns:
// item name, category, min stock, max stock, supplier.
func (l *CatalogLoader) Load(path string) ([]CatalogEntry, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in catalog file")
	}
	sheet := file.Sheets[0]

	var entries []CatalogEntry
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		itemName := get(0)
		if itemName == "" {
			return nil
		}

		minStock, _ := strconv.Atoi(get(2))
		maxStock, _ := strconv.Atoi(get(3))

		entries = append(entries, CatalogEntry{
			ItemName:      itemName,
			CategoryName:  get(1),
			MinStockLevel: minStock,
			MaxStockLevel: maxStock,
			SupplierName:  get(4),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	l.logger.Info("loaded catalog entries", slog.Int("count", len(entries)))
	return entries, nil
}

// DeliveryNoteParser extracts received lots from supplier PDF delivery
// notes. Notes list one lot per line:
//
//	AMOXICILLIN 500MG CAP  LOT A2301  EXP 2027-03-31  QTY 500  $0.12
//
// Expiry and price are optional; non-perishable lines omit EXP.
type DeliveryNoteParser struct {
	logger *slog.Logger
}

func NewDeliveryNoteParser(logger *slog.Logger) *DeliveryNoteParser {
	return &DeliveryNoteParser{logger: logger}
}

var (
	lineRe = regexp.MustCompile(
		`^(.+?)\s+LOT\s+(\S+)(?:\s+EXP\s+(\d{4}-\d{2}-\d{2}))?\s+QTY\s+(\d+)(?:\s+\$?\s*(\d+(?:,\d{3})*(?:\.\d+)?))?\s*$`)
	headerRe = regexp.MustCompile(`(?i)(ITEM.*LOT.*QTY|DELIVERY\s+NOTE)`)
	footerRe = regexp.MustCompile(`(?i)(RECEIVED\s+BY|TOTAL\s+LINES)`)
)

// Parse extracts delivery lines from a single PDF.
func (p *DeliveryNoteParser) Parse(path string) ([]DeliveryLine, error) {
	textLines, err := p.extractTextLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	// Find start (line after header)
	start := 0
	for idx, line := range textLines {
		if headerRe.MatchString(line) {
			start = idx + 1
			break
		}
	}
	if start == 0 {
		p.logger.Warn("no header found, starting from beginning",
			slog.String("file", filepath.Base(path)))
	}

	var lines []DeliveryLine
	for i := start; i < len(textLines); i++ {
		line := strings.TrimSpace(textLines[i])
		if line == "" {
			continue
		}
		if footerRe.MatchString(line) {
			break
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qty, err := strconv.Atoi(m[4])
		if err != nil || qty <= 0 {
			p.logger.Warn("skipping line with invalid quantity", slog.String("line", line))
			continue
		}

		dl := DeliveryLine{
			ItemName:  strings.TrimSpace(m[1]),
			LotNumber: m[2],
			Quantity:  qty,
		}

		if m[3] != "" {
			exp, err := time.Parse("2006-01-02", m[3])
			if err == nil {
				dl.ExpiryDate = &exp
			}
		}

		if m[5] != "" {
			price, err := decimal.NewFromString(strings.ReplaceAll(m[5], ",", ""))
			if err == nil {
				dl.UnitPrice = price
			}
		}

		lines = append(lines, dl)
	}

	p.logger.Info("parsed delivery note",
		slog.String("file", filepath.Base(path)),
		slog.Int("lines", len(lines)))
	return lines, nil
}

func (p *DeliveryNoteParser) extractTextLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var textLines []string
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Warn("failed to extract text from page",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}

		textLines = append(textLines, strings.Split(text, "\n")...)
	}

	return textLines, nil
}

// Seeder writes catalog rows and opening stock into the database.
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	items  map[string]uuid.UUID // item name -> item_master_id
}

func NewSeeder(db *pgxpool.Pool, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
		items:  make(map[string]uuid.UUID),
	}
}

// SeedCatalog upserts item masters and suppliers.
func (s *Seeder) SeedCatalog(ctx context.Context, entries []CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	suppliers := make(map[string]bool)
	for _, e := range entries {
		var itemID uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT item_master_id FROM item_masters WHERE item_name = $1`,
			e.ItemName).Scan(&itemID)
		if err == pgx.ErrNoRows {
			itemID = uuid.New()
			_, err = tx.Exec(ctx, `
				INSERT INTO item_masters (item_master_id, item_name, category_name, min_stock_level, max_stock_level)
				VALUES ($1, $2, $3, $4, $5)`,
				itemID, e.ItemName, nullIfEmpty(e.CategoryName), e.MinStockLevel, e.MaxStockLevel)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert item %q: %w", e.ItemName, err)
		}
		s.items[e.ItemName] = itemID

		if e.SupplierName != "" && !suppliers[e.SupplierName] {
			suppliers[e.SupplierName] = true
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM suppliers WHERE name = $1)`,
				e.SupplierName).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check supplier %q: %w", e.SupplierName, err)
			}
			if !exists {
				if _, err := tx.Exec(ctx,
					`INSERT INTO suppliers (supplier_id, name) VALUES ($1, $2)`,
					uuid.New(), e.SupplierName); err != nil {
					return fmt.Errorf("failed to insert supplier %q: %w", e.SupplierName, err)
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded catalog",
		slog.Int("items", len(entries)),
		slog.Int("suppliers", len(suppliers)))
	return nil
}

// SeedDelivery records one delivery note as opening stock. Each line
// becomes a batch row and a matching IMPORT ledger row in the same
// transaction, so on-hand quantities always equal the ledger sum.
func (s *Seeder) SeedDelivery(ctx context.Context, noteID string, lines []DeliveryLine) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	now := time.Now().UTC()
	for _, line := range lines {
		itemID, ok := s.items[line.ItemName]
		if !ok {
			err := tx.QueryRow(ctx,
				`SELECT item_master_id FROM item_masters WHERE item_name = $1`,
				line.ItemName).Scan(&itemID)
			if err == pgx.ErrNoRows {
				s.logger.Warn("skipping line for unknown item",
					slog.String("item", line.ItemName),
					slog.String("note", noteID))
				continue
			}
			if err != nil {
				return 0, fmt.Errorf("failed to look up item %q: %w", line.ItemName, err)
			}
			s.items[line.ItemName] = itemID
		}

		batchID := uuid.New()
		err := tx.QueryRow(ctx, `
			INSERT INTO item_batches (batch_id, item_master_id, lot_number, expiry_date, quantity_on_hand, import_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_master_id, lot_number) DO UPDATE
			SET quantity_on_hand = item_batches.quantity_on_hand + EXCLUDED.quantity_on_hand,
			    updated_at = now()
			RETURNING batch_id`,
			batchID, itemID, line.LotNumber, line.ExpiryDate, line.Quantity, line.UnitPrice,
		).Scan(&batchID)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert batch %s/%s: %w", line.ItemName, line.LotNumber, err)
		}

		total := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		if _, err := tx.Exec(ctx, `
			INSERT INTO storage_transactions (transaction_id, batch_id, type, quantity, direction, unit_price, total_value, performed_by, notes, transaction_date)
			VALUES ($1, $2, 'IMPORT', $3, 1, $4, $5, 'seeder', $6, $7)`,
			uuid.New(), batchID, line.Quantity, line.UnitPrice, total,
			fmt.Sprintf("delivery note %s", noteID), now); err != nil {
			return 0, fmt.Errorf("failed to insert ledger row for %s/%s: %w", line.ItemName, line.LotNumber, err)
		}

		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded delivery note",
		slog.String("note", noteID),
		slog.Int("lines", inserted))
	return inserted, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SeederState tracks which delivery notes were already loaded.
type SeederState struct {
	ProcessedNotes []string  `json:"processed_notes"`
	ProcessedCount int       `json:"processed_count"`
	LastUpdate     time.Time `json:"last_update"`
}

func (st *SeederState) contains(noteID string) bool {
	for _, id := range st.ProcessedNotes {
		if id == noteID {
			return true
		}
	}
	return false
}

func main() {
	// Parse flags
	var (
		catalogFile  = flag.String("catalog", "./catalog.xlsx", "Excel workbook with the item master list")
		deliveryDir  = flag.String("deliveries", "./deliveries", "Directory containing PDF delivery notes")
		stateFile    = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun       = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force        = flag.Bool("force", false, "Reprocess all delivery notes")
		skipCatalog  = flag.Bool("skip-catalog", false, "Skip catalog seeding, only load deliveries")
		skipDelivery = flag.Bool("skip-deliveries", false, "Skip delivery notes, only seed the catalog")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "clinic"),
		getEnv("DB_PASSWORD", "clinic_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "clinic_warehouse"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	seeder := NewSeeder(db, logger)

	// Seed catalog
	if !*skipCatalog {
		entries, err := NewCatalogLoader(logger).Load(*catalogFile)
		if err != nil {
			logger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if *dryRun {
			logger.Info("[dry run] would seed catalog", slog.Int("items", len(entries)))
		} else if err := seeder.SeedCatalog(ctx, entries); err != nil {
			logger.Error("failed to seed catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *skipDelivery {
		logger.Info("skipping delivery notes")
		return
	}

	// Load state
	var state SeederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			json.Unmarshal(stateData, &state)
		}
	}

	// Process delivery notes
	pdfFiles, err := filepath.Glob(filepath.Join(*deliveryDir, "*.pdf"))
	if err != nil {
		logger.Error("failed to find PDF files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	parser := NewDeliveryNoteParser(logger)

	totalProcessed := 0
	totalLines := 0
	var failedNotes []string

	for i, pdfFile := range pdfFiles {
		noteID := strings.TrimSuffix(filepath.Base(pdfFile), ".pdf")

		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(pdfFiles), noteID)

		if !*force && state.contains(noteID) {
			logger.Info("skipping already processed delivery note", slog.String("note", noteID))
			continue
		}

		lines, err := parser.Parse(pdfFile)
		if err != nil {
			logger.Error("failed to parse delivery note",
				slog.String("note", noteID),
				slog.String("error", err.Error()))
			failedNotes = append(failedNotes, noteID)
			continue
		}

		if len(lines) == 0 {
			logger.Warn("no lines found in delivery note", slog.String("note", noteID))
			failedNotes = append(failedNotes, fmt.Sprintf("%s (0 lines)", noteID))
			continue
		}

		if *dryRun {
			logger.Info("[dry run] would seed delivery note",
				slog.String("note", noteID),
				slog.Int("lines", len(lines)))
		} else {
			inserted, err := seeder.SeedDelivery(ctx, noteID, lines)
			if err != nil {
				logger.Error("failed to seed delivery note",
					slog.String("note", noteID),
					slog.String("error", err.Error()))
				failedNotes = append(failedNotes, noteID)
				continue
			}
			totalLines += inserted
		}

		totalProcessed++
		state.ProcessedNotes = append(state.ProcessedNotes, noteID)
		state.ProcessedCount = len(state.ProcessedNotes)
		state.LastUpdate = time.Now()

		// Save state periodically
		if !*dryRun && i%10 == 0 {
			stateData, _ := json.MarshalIndent(state, "", "  ")
			os.WriteFile(*stateFile, stateData, 0644)
		}
	}

	// Save final state
	if !*dryRun {
		stateData, _ := json.MarshalIndent(state, "", "  ")
		os.WriteFile(*stateFile, stateData, 0644)
	}

	logger.Info("seed operation completed",
		slog.Int("notes_processed", totalProcessed),
		slog.Int("stock_lines", totalLines),
		slog.Int("failed_notes", len(failedNotes)))

	if len(failedNotes) > 0 {
		for _, note := range failedNotes {
			fmt.Printf("FAILED: %s\n", note)
		}
	}

	if *dryRun {
		fmt.Println("[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
