package ja

import (
	"fmt"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// BuildRegistry assembles every ja class grammar into a tnorm.Registry
// with the spec §4.10 weight table applied (DefaultJaWeights, which
// gives address_number the "structured digits" priority slot zh gives
// to date/time). whitelistEntries follows the same optional-grammar
// convention as package zh's BuildRegistry.
func BuildRegistry(whitelistEntries [][2]string) (*tnorm.Registry, error) {
	w := tnorm.DefaultJaWeights()
	reg := &tnorm.Registry{}

	cardinalTagger, err := CardinalTagger()
	if err != nil {
		return nil, fmt.Errorf("ja cardinal: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassCardinal, Tagger: cardinalTagger, Verbalizer: CardinalVerbalizer(), Weight: w.Cardinal,
	})

	telTagger, err := TelephoneTagger()
	if err != nil {
		return nil, fmt.Errorf("ja telephone: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassTelephone, Tagger: telTagger, Verbalizer: TelephoneVerbalizer(), Weight: w.TelephoneContext,
	})

	moneyTagger, err := MoneyTagger()
	if err != nil {
		return nil, fmt.Errorf("ja money: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassMoney, Tagger: moneyTagger, Verbalizer: MoneyVerbalizer(), Weight: w.Money,
	})

	timeTagger, err := TimeTagger()
	if err != nil {
		return nil, fmt.Errorf("ja time: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassTime, Tagger: timeTagger, Verbalizer: TimeVerbalizer(), Weight: w.DateTime,
	})

	addrTagger, err := AddressNumberTagger()
	if err != nil {
		return nil, fmt.Errorf("ja address_number: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassAddressNumber, Tagger: addrTagger, Verbalizer: AddressNumberVerbalizer(), Weight: w.AddressNumber,
	})

	ccTagger, err := CreditCardTagger()
	if err != nil {
		return nil, fmt.Errorf("ja credit_card: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassCreditCard, Tagger: ccTagger, Verbalizer: CreditCardVerbalizer(), Weight: w.CreditCard,
	})

	serialTagger, err := SerialNumberTagger()
	if err != nil {
		return nil, fmt.Errorf("ja serial_number: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassSerialNumber, Tagger: serialTagger, Verbalizer: SerialNumberVerbalizer(), Weight: w.SerialNumber,
	})

	punctTagger, err := PunctuationTagger()
	if err != nil {
		return nil, fmt.Errorf("ja punctuation: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassPunctuation, Tagger: punctTagger, Verbalizer: PunctuationVerbalizer(), Weight: w.Punctuation,
	})

	if len(whitelistEntries) > 0 {
		reg.Grammars = append(reg.Grammars, tnorm.Grammar{
			Class: tnorm.ClassWhitelist, Tagger: WhitelistTagger(whitelistEntries), Verbalizer: WhitelistVerbalizer(), Weight: w.Whitelist,
		})
	}

	wordTagger, err := WordTagger()
	if err != nil {
		return nil, fmt.Errorf("ja word: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassWord, Tagger: wordTagger, Verbalizer: WordVerbalizer(), Weight: w.Word,
	})

	return reg, nil
}
