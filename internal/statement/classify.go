package statement

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var whereClause = regexp.MustCompile(`(?is)\bWHERE\b(.*?)(?:\bORDER\s+BY\b|$)`)

const identTrimSet = "[]\"`;,"

// Scanner is the default Classifier. It reads the leading keyword and the
// token after an anchor keyword, and nothing more.
type Scanner struct{}

// Classify implements Classifier.
func (Scanner) Classify(text string) Statement {
	tokens := strings.Fields(text)
	stmt := Statement{Text: text}

	if len(tokens) == 0 {
		return stmt
	}

	switch {
	case keywordIs(tokens[0], "INSERT"):
		stmt.Kind = KindInsert
		stmt.Table = tokenAfter(tokens, "INTO")
	case keywordIs(tokens[0], "UPDATE"):
		stmt.Kind = KindUpdate
		stmt.Table = tableName(tokenAt(tokens, 1))
	case keywordIs(tokens[0], "DELETE"):
		stmt.Kind = KindDelete
		stmt.Table = tokenAfter(tokens, "FROM")
	default:
		stmt.Kind = KindSelect
		stmt.Table = tokenAfter(tokens, "FROM")
		stmt.Columns = selectList(tokens)
	}

	if m := whereClause.FindStringSubmatch(text); m != nil {
		stmt.HasWhere = true
		stmt.Where = strings.TrimSpace(m[1])
	}

	return stmt
}

// Classify classifies text with the default Scanner.
func Classify(text string) Statement {
	return Scanner{}.Classify(text)
}

// keywordIs compares a token to a keyword under Unicode case folding.
func keywordIs(token, keyword string) bool {
	fold := cases.Fold()
	return fold.String(token) == fold.String(keyword)
}

func indexOfKeyword(tokens []string, keyword string) int {
	for i, tok := range tokens {
		if keywordIs(tok, keyword) {
			return i
		}
	}
	return -1
}

func tokenAt(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

// tokenAfter returns the table name following the first occurrence of
// keyword, or "" when the keyword is absent.
func tokenAfter(tokens []string, keyword string) string {
	i := indexOfKeyword(tokens, keyword)
	if i < 0 {
		return ""
	}
	return tableName(tokenAt(tokens, i+1))
}

// tableName strips a column list glued to the name ("Employees(FirstName,"),
// quoting brackets and a schema qualifier ("dbo.Employees").
func tableName(tok string) string {
	if i := strings.IndexByte(tok, '('); i >= 0 {
		tok = tok[:i]
	}
	tok = strings.Trim(tok, identTrimSet)
	if i := strings.LastIndexByte(tok, '.'); i >= 0 {
		tok = strings.Trim(tok[i+1:], identTrimSet)
	}
	return tok
}

// selectList reads the comma-separated names between SELECT and FROM.
// Returns nil for "*" or when either keyword is missing.
func selectList(tokens []string) []string {
	if !keywordIs(tokenAt(tokens, 0), "SELECT") {
		return nil
	}
	from := indexOfKeyword(tokens, "FROM")
	if from < 1 {
		return nil
	}

	var cols []string
	for _, part := range strings.Split(strings.Join(tokens[1:from], " "), ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if name == "*" || strings.HasSuffix(name, ".*") {
			return nil
		}
		cols = append(cols, tableName(name))
	}
	return cols
}
