package ros

// RosArgs collects the node-level options that follow --ros-args.
type RosArgs struct {
	NodeName    string
	Namespace   string
	ParamsFiles []string
	Remappings  [][2]string
}

// Args renders the --ros-args tail. It returns nil when there is nothing
// to pass.
func (r RosArgs) Args() []string {
	var args []string
	if r.NodeName != "" {
		args = append(args, "-r", "__node"+Remap+r.NodeName)
	}
	if ns := ExpandNamespace(r.Namespace); ns != "" {
		args = append(args, "-r", "__ns"+Remap+ns)
	}
	for _, f := range r.ParamsFiles {
		args = append(args, "--params-file", f)
	}
	for _, remap := range r.Remappings {
		args = append(args, "-r", remap[0]+Remap+remap[1])
	}
	if len(args) == 0 {
		return nil
	}
	return append([]string{"--ros-args"}, args...)
}
