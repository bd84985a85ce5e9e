package cmd

import (
	"errors"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
)

type defaultEntry struct {
	key, name, description string
	category               menu.Category
	price                  string
}

var defaultEntries = []defaultEntry{
	{"arroz-branco", "Arroz branco", "Arroz soltinho", menu.Base, "6.00"},
	{"arroz-integral", "Arroz integral", "", menu.Base, "7.00"},
	{"feijao-carioca", "Feijão carioca", "Feijão temperado da casa", menu.Mix, "4.00"},
	{"frango-grelhado", "Frango grelhado", "Filé de peito grelhado", menu.Mix, "9.00"},
	{"carne-de-panela", "Carne de panela", "", menu.Mix, "11.00"},
	{"salada-verde", "Salada verde", "Alface, tomate e cebola", menu.Side, "3.50"},
	{"farofa", "Farofa", "", menu.Side, "2.50"},
}

// DefaultMenu is the standard menu seeded at startup and restored by the
// menu reset. Display order follows the list.
func DefaultMenu() ([]menu.DefaultItem, error) {
	defaults := make([]menu.DefaultItem, 0, len(defaultEntries))
	var errList []error
	for i, e := range defaultEntries {
		price, err := kernel.MoneyFromString(e.price)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		order := i + 1
		d, err := menu.NewDefaultItem(e.key, e.name, e.description, e.category, price, &order, "")
		if err != nil {
			errList = append(errList, err)
			continue
		}
		defaults = append(defaults, d)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return defaults, nil
}
