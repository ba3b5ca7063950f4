package tag

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	commaTerminatorToken = iota
	scopeBlockToken
)

var (
	commaTerminatorMatcher = parsly.NewToken(commaTerminatorToken, "comma", matcher.NewTerminator(',', true))
	scopeBlockMatcher      = parsly.NewToken(scopeBlockToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
)
