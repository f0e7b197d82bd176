package ports

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
)

// DocumentRenderer genera la versión imprimible (PDF) de cartas, remanejamentos, documentos de
// membro y reportes.
type DocumentRenderer interface {
	RenderPreachingLetter(ctx context.Context, letter *dto.PreachingLetterDTO) ([]byte, error)
	RenderReassignment(ctx context.Context, doc *dto.ReassignmentDTO) ([]byte, error)
	// RenderMemberCard imprime frente y verso en páginas de 85,6 × 53,98 mm.
	RenderMemberCard(ctx context.Context, card *dto.MemberCardDTO) ([]byte, error)
	RenderMemberRecord(ctx context.Context, record *dto.MemberRecordDTO) ([]byte, error)
	RenderReport(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}
