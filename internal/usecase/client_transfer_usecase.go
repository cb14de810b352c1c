package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImportSize is the largest CSV upload accepted by Import.
const MaxImportSize = 10 << 20

const defaultExportDateFormat = "%d/%m/%Y"

// Client columns, in export order.
const (
	FieldName         = "name"
	FieldContactName  = "contact_name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZipCode      = "zip_code"
	FieldObservations = "observations"
)

var clientFields = []string{
	FieldName, FieldContactName, FieldPhone, FieldEmail, FieldAddress,
	FieldCity, FieldState, FieldZipCode, FieldObservations,
}

var fieldLabels = map[string]string{
	FieldName:         "Nome",
	FieldContactName:  "Contato",
	FieldPhone:        "Telefone",
	FieldEmail:        "Email",
	FieldAddress:      "Endereço",
	FieldCity:         "Cidade",
	FieldState:        "Estado",
	FieldZipCode:      "CEP",
	FieldObservations: "Observações",
	"created_at":      "Data de Cadastro",
	"updated_at":      "Última Atualização",
}

// headerAliases maps a normalized CSV header to a client field.
var headerAliases = map[string]string{
	"nome": FieldName, "name": FieldName,
	"contato": FieldContactName, "contact_name": FieldContactName, "contact": FieldContactName,
	"telefone": FieldPhone, "phone": FieldPhone,
	"email": FieldEmail, "e-mail": FieldEmail,
	"endereco": FieldAddress, "address": FieldAddress,
	"cidade": FieldCity, "city": FieldCity,
	"estado": FieldState, "state": FieldState, "uf": FieldState,
	"cep": FieldZipCode, "zip_code": FieldZipCode, "zip": FieldZipCode,
	"observacoes": FieldObservations, "observations": FieldObservations,
}

var accents = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ImportResult struct {
	Success        bool             `json:"success"`
	TotalProcessed int              `json:"total_processed"`
	ImportedCount  int              `json:"imported_count"`
	Errors         []ImportRowError `json:"errors"`
	Warnings       []string         `json:"warnings"`
}

type ExportOptions struct {
	Fields       []string
	IncludeDates bool
	DateFormat   string
	Format       string
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IClientTransferUseCase interface {
	Import(ctx context.Context, filename string, size int64, r io.Reader) (ImportResult, error)
	Export(ctx context.Context, opts ExportOptions) (ExportFile, error)
}

type ClientTransferUseCase struct {
	repo     interfaces.IClientRepository
	audit    interfaces.IAuditLogRepository
	metrics  interfaces.IMetrics
	decoder  interfaces.ISheetDecoder
	encoders map[string]interfaces.ISheetEncoder
	now      func() time.Time
}

var _ IClientTransferUseCase = (*ClientTransferUseCase)(nil)

func NewClientTransferUseCase(
	repo interfaces.IClientRepository,
	audit interfaces.IAuditLogRepository,
	metrics interfaces.IMetrics,
	decoder interfaces.ISheetDecoder,
	encoders ...interfaces.ISheetEncoder,
) *ClientTransferUseCase {
	byFormat := make(map[string]interfaces.ISheetEncoder, len(encoders))
	for _, e := range encoders {
		byFormat[e.Format()] = e
	}
	return &ClientTransferUseCase{
		repo:     repo,
		audit:    audit,
		metrics:  orNopMetrics(metrics),
		decoder:  decoder,
		encoders: byFormat,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Import reads clients from a CSV upload. Rows are validated one by one;
// a bad row is reported and does not stop the rest of the file.
func (u *ClientTransferUseCase) Import(ctx context.Context, filename string, size int64, r io.Reader) (ImportResult, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return ImportResult{}, invalid("file", "must be a .csv file")
	}
	if size > MaxImportSize {
		return ImportResult{}, invalid("file", fmt.Sprintf("must not exceed %d MB", MaxImportSize>>20))
	}

	header, rows, err := u.decoder.Decode(io.LimitReader(r, MaxImportSize+1))
	if err != nil {
		return ImportResult{}, invalid("file", err.Error())
	}

	res := ImportResult{Errors: []ImportRowError{}, Warnings: []string{}}
	if len(header) == 0 || len(rows) == 0 {
		res.Warnings = append(res.Warnings, "Arquivo sem registros para importar")
		return res, nil
	}

	columns := mapHeader(header)
	for _, required := range []string{FieldName, FieldPhone} {
		if _, ok := columns[required]; !ok {
			return ImportResult{}, invalid("file", fmt.Sprintf("missing required column %q", required))
		}
	}
	for _, h := range header {
		if _, ok := headerAliases[normalizeHeader(h)]; !ok && strings.TrimSpace(h) != "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Coluna ignorada: %s", strings.TrimSpace(h)))
		}
	}

	seenNames := map[string]int{}
	seenPhones := map[string]int{}
	var imported []string
	now := u.now()

	for i, row := range rows {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}
		res.TotalProcessed++

		c := clientFromRow(row, columns)
		c.ID = uuid.NewString()
		c.CreatedAt = now
		c.UpdatedAt = now
		if c.ContactName == "" {
			c.ContactName = c.Name
		}

		if err := validateClient(c); err != nil {
			res.Errors = append(res.Errors, rowError(rowNum, err))
			continue
		}
		if prev, ok := seenNames[c.Name]; ok {
			res.Errors = append(res.Errors, ImportRowError{Row: rowNum, Field: FieldName, Message: fmt.Sprintf("nome duplicado no arquivo (linha %d)", prev)})
			continue
		}
		if prev, ok := seenPhones[c.Phone]; ok {
			res.Errors = append(res.Errors, ImportRowError{Row: rowNum, Field: FieldPhone, Message: fmt.Sprintf("telefone duplicado no arquivo (linha %d)", prev)})
			continue
		}
		if err := ensureClientUnique(ctx, u.repo, c); err != nil {
			if !errors.Is(err, ErrDuplicate) {
				return ImportResult{}, err
			}
			res.Errors = append(res.Errors, rowError(rowNum, err))
			continue
		}

		if _, err := u.repo.Create(ctx, c); err != nil {
			res.Errors = append(res.Errors, ImportRowError{Row: rowNum, Message: err.Error()})
			logging.FromContext(ctx).Error("client.import.row_failed", zap.Int("row", rowNum), zap.Error(err))
			continue
		}
		seenNames[c.Name] = rowNum
		seenPhones[c.Phone] = rowNum
		imported = append(imported, c.ID)
	}

	res.ImportedCount = len(imported)
	res.Success = res.ImportedCount > 0 && len(res.Errors) == 0
	if res.TotalProcessed == 0 {
		res.Warnings = append(res.Warnings, "Arquivo sem registros para importar")
	}

	u.metrics.ClientsImported(res.ImportedCount)
	if res.ImportedCount > 0 {
		recordAudit(ctx, u.audit, entities.AuditActionClientImport, imported, map[string]any{
			"filename":        filepath.Base(filename),
			"total_processed": res.TotalProcessed,
			"imported_count":  res.ImportedCount,
			"error_count":     len(res.Errors),
		})
	}
	logging.FromContext(ctx).Info("client.import",
		zap.Int("processed", res.TotalProcessed),
		zap.Int("imported", res.ImportedCount),
		zap.Int("errors", len(res.Errors)),
	)
	return res, nil
}

// Export renders the selected client fields in the requested format.
func (u *ClientTransferUseCase) Export(ctx context.Context, opts ExportOptions) (ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "csv"
	}
	enc, ok := u.encoders[format]
	if !ok {
		return ExportFile{}, invalid("format", fmt.Sprintf("unsupported format %q", opts.Format))
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = clientFields
	}
	for _, f := range fields {
		if _, ok := fieldLabels[f]; !ok || f == "created_at" || f == "updated_at" {
			return ExportFile{}, invalid("fields", fmt.Sprintf("unknown field %q", f))
		}
	}

	dateFormat := opts.DateFormat
	if dateFormat == "" {
		dateFormat = defaultExportDateFormat
	}
	layout, err := StrftimeLayout(dateFormat)
	if err != nil {
		return ExportFile{}, err
	}

	clients, err := u.repo.List(ctx)
	if err != nil {
		return ExportFile{}, err
	}
	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})

	columns := append([]string{}, fields...)
	if opts.IncludeDates {
		columns = append(columns, "created_at", "updated_at")
	}
	header := make([]string, len(columns))
	for i, f := range columns {
		header[i] = fieldLabels[f]
	}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		row := make([]string, len(columns))
		for i, f := range columns {
			row[i] = clientValue(c, f, layout)
		}
		rows = append(rows, row)
	}

	data, err := enc.Encode(header, rows)
	if err != nil {
		return ExportFile{}, fmt.Errorf("encode %s export: %w", format, err)
	}
	logging.FromContext(ctx).Info("client.export", zap.String("format", format), zap.Int("clients", len(clients)))
	return ExportFile{
		Filename:    fmt.Sprintf("clientes_export_%s.%s", u.now().Format("20060102_150405"), enc.Extension()),
		ContentType: enc.ContentType(),
		Data:        data,
	}, nil
}

// StrftimeLayout converts the supported strftime directives into a Go time
// layout. Unknown directives are rejected.
func StrftimeLayout(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			b.WriteByte(format[i])
			continue
		}
		if i+1 >= len(format) {
			return "", invalid("date_format", "dangling %")
		}
		i++
		switch format[i] {
		case 'd':
			b.WriteString("02")
		case 'm':
			b.WriteString("01")
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'H':
			b.WriteString("15")
		case 'M':
			b.WriteString("04")
		case 'S':
			b.WriteString("05")
		case '%':
			b.WriteByte('%')
		default:
			return "", invalid("date_format", fmt.Sprintf("unsupported directive %%%c", format[i]))
		}
	}
	return b.String(), nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = accents.Replace(h)
	return strings.ReplaceAll(h, " ", "_")
}

func mapHeader(header []string) map[string]int {
	columns := map[string]int{}
	for i, h := range header {
		field, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := columns[field]; !dup {
			columns[field] = i
		}
	}
	return columns
}

// sanitizeCell strips leading characters that spreadsheet tools would
// evaluate as a formula.
func sanitizeCell(v string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(v), "=+-@\t\r"))
}

func clientFromRow(row []string, columns map[string]int) entities.Client {
	get := func(field string) string {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return ""
		}
		return sanitizeCell(row[i])
	}
	return entities.Client{
		Name:         get(FieldName),
		ContactName:  get(FieldContactName),
		Phone:        get(FieldPhone),
		Email:        get(FieldEmail),
		Address:      get(FieldAddress),
		City:         get(FieldCity),
		State:        get(FieldState),
		ZipCode:      get(FieldZipCode),
		Observations: get(FieldObservations),
	}
}

func clientValue(c entities.Client, field, layout string) string {
	switch field {
	case FieldName:
		return c.Name
	case FieldContactName:
		return c.ContactName
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	case FieldAddress:
		return c.Address
	case FieldCity:
		return c.City
	case FieldState:
		return c.State
	case FieldZipCode:
		return c.ZipCode
	case FieldObservations:
		return c.Observations
	case "created_at":
		return formatDate(c.CreatedAt, layout)
	case "updated_at":
		return formatDate(c.UpdatedAt, layout)
	}
	return ""
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func rowError(row int, err error) ImportRowError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ImportRowError{Row: row, Field: ve.Field, Message: ve.Reason}
	}
	switch {
	case errors.Is(err, ErrClientDuplicateName):
		return ImportRowError{Row: row, Field: FieldName, Message: "cliente com este nome já existe"}
	case errors.Is(err, ErrClientDuplicatePhone):
		return ImportRowError{Row: row, Field: FieldPhone, Message: "cliente com este telefone já existe"}
	}
	return ImportRowError{Row: row, Message: err.Error()}
}
