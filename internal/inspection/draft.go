package inspection

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/site"
	"github.com/siteguard/api/internal/util"
)

var (
	// ErrUnknownItem é retornado para chaves fora do checklist fixo.
	ErrUnknownItem = errors.New("item de checklist desconhecido")
	// ErrClosed indica rascunho já finalizado; nenhuma mutação é aceita.
	ErrClosed = errors.New("rascunho encerrado")
	// ErrSiteRequired impede submissão sem canteiro selecionado.
	ErrSiteRequired = errors.New("canteiro não selecionado")
	// ErrIndexOutOfRange cobre remoções com índice inválido.
	ErrIndexOutOfRange = errors.New("índice fora do intervalo")
	// ErrPhotoDecode indica blob que não decodifica como imagem.
	ErrPhotoDecode = errors.New("foto não pôde ser decodificada")
	// ErrInvalidIssue agrupa falhas de validação de ocorrências.
	ErrInvalidIssue = errors.New("ocorrência inválida")
)

// Estados do rascunho. A transição Empty→InProgress acontece na primeira
// mutação; de Submitted não há retorno.
const (
	StateEmpty      = "empty"
	StateInProgress = "in-progress"
	StateSubmitted  = "submitted"
)

// Photo guarda o blob capturado e seus metadados de decodificação.
type Photo struct {
	Data   []byte `json:"-"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Issue é uma ocorrência apontada durante o preenchimento.
type Issue struct {
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
}

// Draft é uma submissão de inspeção em andamento. Todas as operações
// falham de forma atômica: erro nunca deixa o rascunho inconsistente.
type Draft struct {
	mu        sync.Mutex
	id        uuid.UUID
	site      *site.Site
	inspector string
	answers   map[ItemKey]bool
	photos    []Photo
	issues    []Issue
	state     string
	createdAt time.Time
}

// NewDraft cria um rascunho vazio com todas as respostas em falso.
func NewDraft(inspector string) *Draft {
	answers := make(map[ItemKey]bool, len(Items))
	for _, item := range Items {
		answers[item.Key] = false
	}
	return &Draft{
		id:        uuid.New(),
		inspector: inspector,
		answers:   answers,
		state:     StateEmpty,
		createdAt: time.Now(),
	}
}

// ID devolve o identificador do rascunho.
func (d *Draft) ID() uuid.UUID {
	return d.id
}

// SelectSite define o canteiro alvo. Não é permitido após a submissão.
func (d *Draft) SelectSite(s site.Site) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return ErrClosed
	}
	d.site = &s
	return nil
}

// ToggleItem inverte a resposta do item informado.
func (d *Draft) ToggleItem(key ItemKey) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return ErrClosed
	}
	if !ValidKey(key) {
		return fmt.Errorf("%w: %s", ErrUnknownItem, key)
	}
	d.answers[key] = !d.answers[key]
	d.state = StateInProgress
	return nil
}

// AddPhoto decodifica e anexa o blob. Blob que não decodifica não é
// anexado: a sequência de fotos permanece intacta.
func (d *Draft) AddPhoto(data []byte) (Photo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Photo{}, ErrPhotoDecode
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return Photo{}, ErrClosed
	}
	photo := Photo{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}
	d.photos = append(d.photos, photo)
	d.state = StateInProgress
	return photo, nil
}

// RemovePhoto remove a foto pelo índice de captura.
func (d *Draft) RemovePhoto(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return ErrClosed
	}
	if index < 0 || index >= len(d.photos) {
		return ErrIndexOutOfRange
	}
	d.photos = append(d.photos[:index], d.photos[index+1:]...)
	return nil
}

// AddIssue registra uma ocorrência com prioridade do conjunto fixo.
func (d *Draft) AddIssue(priority string, description string) (Issue, error) {
	parsed, ok := ParsePriority(priority)
	if !ok {
		return Issue{}, fmt.Errorf("%w: prioridade desconhecida", ErrInvalidIssue)
	}
	if err := util.RequireString(description, "descrição"); err != nil {
		return Issue{}, fmt.Errorf("%w: %s", ErrInvalidIssue, err.Error())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return Issue{}, ErrClosed
	}
	issue := Issue{Priority: parsed, Description: description}
	d.issues = append(d.issues, issue)
	d.state = StateInProgress
	return issue, nil
}

// RemoveIssue remove a ocorrência pelo índice.
func (d *Draft) RemoveIssue(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return ErrClosed
	}
	if index < 0 || index >= len(d.issues) {
		return ErrIndexOutOfRange
	}
	d.issues = append(d.issues[:index], d.issues[index+1:]...)
	return nil
}

// Progress devolve a fração de itens marcados, no intervalo [0,1].
func (d *Draft) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progressLocked()
}

func (d *Draft) progressLocked() float64 {
	done := 0
	for _, checked := range d.answers {
		if checked {
			done++
		}
	}
	return float64(done) / float64(len(d.answers))
}

// Submit finaliza o rascunho e constrói o relatório. O checklist não
// precisa estar completo: a submissão parcial é intencional.
func (d *Draft) Submit(now time.Time) (report.Report, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitted {
		return report.Report{}, ErrClosed
	}
	if d.site == nil {
		return report.Report{}, ErrSiteRequired
	}

	checklist := make([]report.ChecklistEntry, 0, len(Items))
	for _, item := range Items {
		checklist = append(checklist, report.ChecklistEntry{
			Item:   item.Label,
			Passed: d.answers[item.Key],
		})
	}

	issues := make([]report.Issue, 0, len(d.issues))
	for _, issue := range d.issues {
		issues = append(issues, report.Issue{
			Priority:    string(issue.Priority),
			Description: issue.Description,
			Status:      "Open",
		})
	}

	d.state = StateSubmitted
	return report.Report{
		Site:       d.site.Name,
		Location:   d.site.Address,
		Date:       now,
		Inspector:  d.inspector,
		Status:     report.StatusCompleted,
		Checklist:  checklist,
		Issues:     issues,
		PhotoCount: len(d.photos),
	}, nil
}

// View é a projeção serializável do rascunho.
type View struct {
	ID        uuid.UUID        `json:"id"`
	Site      *site.Site       `json:"site,omitempty"`
	Inspector string           `json:"inspector"`
	Answers   map[ItemKey]bool `json:"answers"`
	Progress  float64          `json:"progress"`
	Photos    []Photo          `json:"photos"`
	Issues    []Issue          `json:"issues"`
	State     string           `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
}

// Snapshot devolve uma cópia consistente do estado atual.
func (d *Draft) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	answers := make(map[ItemKey]bool, len(d.answers))
	for key, checked := range d.answers {
		answers[key] = checked
	}
	photos := make([]Photo, len(d.photos))
	copy(photos, d.photos)
	issues := make([]Issue, len(d.issues))
	copy(issues, d.issues)

	return View{
		ID:        d.id,
		Site:      d.site,
		Inspector: d.inspector,
		Answers:   answers,
		Progress:  d.progressLocked(),
		Photos:    photos,
		Issues:    issues,
		State:     d.state,
		CreatedAt: d.createdAt,
	}
}
