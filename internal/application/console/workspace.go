package console

import "github.com/JakesDourado/Cadastro-FNR/pkg/logger"

// Workspace par de pantallas de una sesión. Los stores de cada pantalla son disjuntos.
type Workspace struct {
	Categories *CategoryScreen
	Products   *ProductScreen
}

// NewWorkspace construye ambas pantallas sobre el mismo Gateway.
func NewWorkspace(gw Gateway, log *logger.Logger) *Workspace {
	return &Workspace{
		Categories: NewCategoryScreen(gw, log),
		Products:   NewProductScreen(gw, log),
	}
}
