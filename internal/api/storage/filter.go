package storage

import "github.com/cuongbtq/jobs-api/shared/sqlbuilder"

// JobFilter holds the optional listing filters. A nil field is absent.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// FilterClause is the predicate list of a job listing without the WHERE
// keyword, and the values bound to its placeholders.
type FilterClause struct {
	SQL  string
	Args *sqlbuilder.Args
}

// BuildFilterClause renders filter as AND-ed predicates. Predicates are always
// considered in the order title, minSalary, hasEquity so placeholder numbering
// is deterministic. hasEquity binds no value.
func BuildFilterClause(filter JobFilter) FilterClause {
	args := sqlbuilder.NewArgs()
	conds := sqlbuilder.NewConditions(args)

	if filter.Title != nil && *filter.Title != "" {
		conds.AddValue("title ILIKE %s", "%"+*filter.Title+"%")
	}

	// Presence decides, so a zero floor is still applied.
	if filter.MinSalary != nil {
		conds.AddValue("salary >= %s", *filter.MinSalary)
	}

	if filter.HasEquity != nil && *filter.HasEquity {
		conds.Add("equity IS NOT NULL")
	}

	return FilterClause{
		SQL:  conds.SQL(),
		Args: args,
	}
}
