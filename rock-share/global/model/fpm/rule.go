package fpm

// Rule 由频繁项集导出的关联规则,Lhs和Rhs不相交且均非空,并集是一个频繁项集
type Rule struct {
	Lhs        []int   // 前件,升序项编号
	Rhs        []int   // 后件,升序项编号
	Ree        string  // 可读的规则表达式,编号形式,如 1,2->3
	Support    float64 // supp(Lhs∪Rhs)/total
	Confidence float64 // supp(Lhs∪Rhs)/supp(Lhs)
	Lift       float64
	Leverage   float64
	Conviction float64 // confidence>=1时为+Inf
}
