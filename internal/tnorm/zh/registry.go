package zh

import (
	"fmt"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// BuildRegistry assembles every zh class grammar into a tnorm.Registry
// with the spec §4.10 weight table applied. whitelistEntries is the
// optional surface->spoken override table from spec §6's whitelist_path;
// when empty the whitelist grammar is omitted entirely rather than
// unioning in an empty-language StringMap.
func BuildRegistry(whitelistEntries [][2]string) (*tnorm.Registry, error) {
	w := tnorm.DefaultZhWeights()
	reg := &tnorm.Registry{}

	cardinalTagger, err := CardinalTagger()
	if err != nil {
		return nil, fmt.Errorf("zh cardinal: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassCardinal, Tagger: cardinalTagger, Verbalizer: CardinalVerbalizer(), Weight: w.Cardinal,
	})

	dateTagger, err := DateTagger()
	if err != nil {
		return nil, fmt.Errorf("zh date: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassDate, Tagger: dateTagger, Verbalizer: DateVerbalizer(), Weight: w.DateTime,
	})

	timeTagger, err := TimeTagger()
	if err != nil {
		return nil, fmt.Errorf("zh time: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassTime, Tagger: timeTagger, Verbalizer: TimeVerbalizer(), Weight: w.DateTime,
	})

	telTagger, err := TelephoneTagger()
	if err != nil {
		return nil, fmt.Errorf("zh telephone: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassTelephone, Tagger: telTagger, Verbalizer: TelephoneVerbalizer(), Weight: w.TelephoneContext,
	})

	moneyTagger, err := MoneyTagger()
	if err != nil {
		return nil, fmt.Errorf("zh money: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassMoney, Tagger: moneyTagger, Verbalizer: MoneyVerbalizer(), Weight: w.Money,
	})

	decimalTagger, err := DecimalTagger()
	if err != nil {
		return nil, fmt.Errorf("zh decimal: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassDecimal, Tagger: decimalTagger, Verbalizer: DecimalVerbalizer(), Weight: w.Decimal,
	})

	fractionTagger, err := FractionTagger()
	if err != nil {
		return nil, fmt.Errorf("zh fraction: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassFraction, Tagger: fractionTagger, Verbalizer: FractionVerbalizer(), Weight: w.Fraction,
	})

	ordinalTagger, err := OrdinalTagger()
	if err != nil {
		return nil, fmt.Errorf("zh ordinal: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassOrdinal, Tagger: ordinalTagger, Verbalizer: OrdinalVerbalizer(), Weight: w.Ordinal,
	})

	measureTagger, err := MeasureTagger()
	if err != nil {
		return nil, fmt.Errorf("zh measure: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassMeasure, Tagger: measureTagger, Verbalizer: MeasureVerbalizer(), Weight: w.Measure,
	})

	ccTagger, err := CreditCardTagger()
	if err != nil {
		return nil, fmt.Errorf("zh credit_card: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassCreditCard, Tagger: ccTagger, Verbalizer: CreditCardVerbalizer(), Weight: w.CreditCard,
	})

	serialTagger, err := SerialNumberTagger()
	if err != nil {
		return nil, fmt.Errorf("zh serial_number: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassSerialNumber, Tagger: serialTagger, Verbalizer: SerialNumberVerbalizer(), Weight: w.SerialNumber,
	})

	punctTagger, err := PunctuationTagger()
	if err != nil {
		return nil, fmt.Errorf("zh punctuation: %w", err)
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
		return nil, fmt.Errorf("zh word: %w", err)
	}
	reg.Grammars = append(reg.Grammars, tnorm.Grammar{
		Class: tnorm.ClassWord, Tagger: wordTagger, Verbalizer: WordVerbalizer(), Weight: w.Word,
	})

	return reg, nil
}
