package reporters

type Chain struct {
	Reporters []Reporter
}

func (r *Chain) Report(query int, candidates []int) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(query, candidates)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
