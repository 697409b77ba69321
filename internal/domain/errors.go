package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// ErrMissingStore e ErrDataIntegrity interrompem o pipeline e são reportados
// uma única vez, com contexto (qual planilha, qual campo) adicionado via
// fmt.Errorf("...: %w"). Referências de produto não resolvidas NÃO são erro:
// viram fallback de custo zero (agregação) ou descarte de linha (estoque) e
// são reportadas como insight de qualidade de dados.
var (
	ErrMissingStore  = errors.New("arquivo ou planilha de dados ausente")
	ErrDataIntegrity = errors.New("campo obrigatório ausente ou inválido após normalização")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNotFound      = errors.New("recurso não encontrado")
)
