// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

// Seller representa um vendedor cadastrado no roster
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName retorna o nome completo do vendedor
func (s Seller) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}
