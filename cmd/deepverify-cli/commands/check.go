package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/AzzMarci/deepverify-api/cmd/deepverify-cli/iterator"
	"github.com/AzzMarci/deepverify-api/phone"
	"github.com/AzzMarci/deepverify-api/types"
	"github.com/AzzMarci/deepverify-api/validator"
	"github.com/AzzMarci/deepverify-api/validator/validations"
	"github.com/spf13/cobra"
)

var (
	checkSettings = &CheckSettings{}
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate email addresses or phone numbers",
	Long:  ``,
}

func argsOrStdin(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("too many arguments, expected 0 or 1")
	}

	if len(args) > 0 && isStdinPiped() {
		return errors.New("can't read both from stdin and argument")
	}

	if len(args) == 0 && !isStdinPiped() {
		return errors.New("missing argument")
	}

	return nil
}

// newInputIterator picks the iterator matching the input source and the configured format
func newInputIterator(cmd *cobra.Command, args []string) *iterator.CallbackIterator {
	if len(args) > 0 {
		return createTextIterator(strings.NewReader(args[0]))
	}

	switch checkSettings.Format {
	case "":
		fallthrough
	case "text":
		return createTextIterator(os.Stdin)
	case "csv":
		return createCSVIterator(os.Stdin)
	}

	cmd.PrintErrf("bad format %q", checkSettings.Format)
	return nil
}

var checkEmailCmd = &cobra.Command{
	Use:   "email [address]",
	Short: "Validate email addresses",
	Long:  ``,
	Args:  argsOrStdin,
	Run: func(cmd *cobra.Command, args []string) {
		v := validator.NewEmailAddressValidator(newResolver(checkSettings.Check.Resolver), checkSettings.Check.TTL)

		it := newInputIterator(cmd, args)
		if it == nil {
			return
		}

		jsonEncoder := json.NewEncoder(cmd.OutOrStdout())
		for it.Next() {
			email, err := it.Value()
			if err != nil {
				cmd.PrintErr(err)
				continue
			}

			if email == "" {
				continue
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			r, err := checkEmail(ctx, v.CheckWithLookup, email)
			cancel()

			if err != nil {
				cmd.PrintErr(err)
				continue
			}

			err = jsonEncoder.Encode(r)
			if err != nil {
				cmd.PrintErr(err)
			}
		}
	},
}

var checkPhoneCmd = &cobra.Command{
	Use:   "phone [number]",
	Short: "Validate phone numbers",
	Long:  ``,
	Args:  argsOrStdin,
	Run: func(cmd *cobra.Command, args []string) {
		v := phone.NewNumberValidator(checkSettings.Phone.Regions...)

		it := newInputIterator(cmd, args)
		if it == nil {
			return
		}

		jsonEncoder := json.NewEncoder(cmd.OutOrStdout())
		for it.Next() {
			number, err := it.Value()
			if err != nil {
				cmd.PrintErr(err)
				continue
			}

			if number == "" {
				continue
			}

			err = jsonEncoder.Encode(checkPhone(&v, number))
			if err != nil {
				cmd.PrintErr(err)
			}
		}
	},
}

func checkEmail(ctx context.Context, fn validator.CheckFn, email string) (EmailCheckResult, error) {
	parts, err := types.NewEmailParts(email)
	if err != nil {
		return EmailCheckResult{}, err
	}

	var result = EmailCheckResult{
		Email:   email,
		Version: 1,
	}

	checkResult := fn(ctx, parts)
	{
		result.Valid = checkResult.Validations.IsValid()
		result.Score = validator.Score(checkResult)
		result.Passed = validations.Flag(checkResult.Validations.RemoveFlag(validations.FValid)).AsStringSlice()
		result.Checks = validations.Flag(checkResult.Steps).AsStringSlice()
	}

	return result, nil
}

func checkPhone(v *phone.NumberValidator, number string) PhoneCheckResult {
	r := v.Check(number)

	return PhoneCheckResult{
		Phone:               number,
		Valid:               r.Valid,
		Score:               phone.Score(r),
		InternationalFormat: r.InternationalFormat,
		CountryCode:         r.CountryCode,
		LineType:            r.LineType.String(),
		Version:             1,
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkEmailCmd)
	checkCmd.AddCommand(checkPhoneCmd)

	checkCmd.PersistentFlags().StringVar(&checkSettings.Format, "format", "text", "text or csv. Text means a single value per line '\\n'")
	checkCmd.PersistentFlags().Uint64Var(&checkSettings.CSV.skipRows, "csv-skip-rows", 0, "Rows to skip, useful when wanting to skip the header in CSV files")
	checkCmd.PersistentFlags().Uint64Var(&checkSettings.CSV.column, "csv-column", 0, "The column to read values from, 0-indexed")

	checkEmailCmd.Flags().IPVar(&checkSettings.Check.Resolver, "resolver", nil, "Custom resolver to use, otherwise system default is used")
	checkEmailCmd.Flags().DurationVar(&checkSettings.Check.TTL, "lookup-timeout", validator.DefaultLookupTimeout, "Maximum duration of a single DNS lookup")

	checkPhoneCmd.Flags().StringSliceVar(&checkSettings.Phone.Regions, "regions", phone.DefaultRegions, "Region fallback order for numbers without a + prefix")
}
