package translator_test

import (
	"fmt"

	"github.com/viant/uidkey/ordered"
	"github.com/viant/uidkey/translator"
	"github.com/viant/uidkey/uid"
)

type Size string

const (
	Small Size = "S"
	Large Size = "L"
)

func ExampleTranslator() {
	small, large := uid.NewNamed("small"), uid.NewNamed("large")

	sizes := translator.New[Size]()
	if err := sizes.Insert(
		translator.Entry[Size]{Token: small, Key: Small},
		translator.Entry[Size]{Token: large, Key: Large},
	); err != nil {
		fmt.Println(err)
		return
	}

	key, _ := sizes.KeyFor(large)
	token, _ := sizes.TokenFor(Small)
	fmt.Println(key, token)
	fmt.Println(sizes)

	stock := ordered.New[uid.Token, int](2)
	stock.Set(large, 7)
	stock.Set(small, 3)
	byKey, _ := translator.ToKeys(sizes, stock.All())
	fmt.Println(byKey)

	err := sizes.Insert(translator.Entry[Size]{Token: uid.NewNamed("medium"), Key: Small})
	fmt.Println(err)
	// Output:
	// L Uid{'small'}
	// {Uid{'small'}=S, Uid{'large'}=L}
	// {L=7, S=3}
	// insert: entry 0: key S is already mapped to Uid{'small'}
}
