package papers

import "github.com/donavanyieh/Daily-Attention-UI/internal/models"

var mockPapers = []models.Paper{
	{
		ID:       "2312.20101",
		Title:    "Scaling Laws for Multimodal Reasoning",
		Authors:  []string{"Emily Chen", "Rohit Prasad", "et al."},
		Abstract: "We investigate how scaling model size, data modality, and training compute affects multimodal reasoning performance across vision, language, and audio tasks.",
		Summary:  "This paper extends classical scaling laws into the multimodal regime, showing that balanced scaling across modalities yields better reasoning gains than aggressively scaling a single modality. The authors provide empirical evidence that modality imbalance leads to brittle reasoning.",
		KeyPoints: []string{
			"Introduces multimodal scaling laws across text, image, and audio.",
			"Shows diminishing returns when scaling a single modality.",
			"Balanced data mixtures outperform larger unimodal models.",
			"Provides practical guidance for foundation model training.",
		},
		Impact:  "Guides future multimodal foundation model design, helping labs allocate compute and data budgets more efficiently.",
		Links:   map[string]string{"project": "https://mm-scaling.github.io/"},
		Date:    "2025-12-08",
		Upvotes: 1320,
		Tags:    []string{"Multimodal", "Scaling Laws", "Foundation Models"},
	},
	{
		ID:       "2312.20145",
		Title:    "RAG at Scale: Failure Modes and Fixes",
		Authors:  []string{"Daniel Lopez", "Mira Patel"},
		Abstract: "We analyze real-world failure modes of retrieval-augmented generation systems deployed at scale and propose systematic mitigation strategies.",
		Summary:  "Based on production RAG deployments, this work categorizes hallucinations, stale retrieval, and embedding drift. The authors propose evaluation-driven routing and freshness-aware retrieval as practical fixes.",
		KeyPoints: []string{
			"Taxonomy of RAG failure modes in production.",
			"Introduces freshness-aware retrieval scoring.",
			"Shows routing improves answer faithfulness.",
			"Benchmarks on enterprise QA datasets.",
		},
		Impact:  "Highly actionable for teams deploying LLM-powered search and assistants in production environments.",
		Links:   map[string]string{"github": "https://github.com/rag-at-scale"},
		Date:    "2025-12-08",
		Upvotes: 980,
		Tags:    []string{"RAG", "LLM Systems", "Evaluation"},
	},
	{
		ID:       "2312.20211",
		Title:    "Diffusion Models Trained Entirely on Synthetic Data",
		Authors:  []string{"Alicia Gomez", "Kenji Tanaka", "et al."},
		Abstract: "We demonstrate that diffusion models trained solely on synthetic datasets can match the performance of models trained on real-world images.",
		Summary:  "By iteratively generating and filtering synthetic images, the authors build a closed-loop data engine that eliminates the need for real images, challenging assumptions about data sourcing.",
		KeyPoints: []string{
			"100% synthetic training data for diffusion models.",
			"Iterative filtering improves sample quality.",
			"Matches real-data baselines on ImageNet.",
			"Reduces data licensing and privacy risks.",
		},
		Impact:  "Opens the door to privacy-preserving and legally safer generative model training pipelines.",
		Links:   map[string]string{"project": "https://synthetic-diffusion.ai/"},
		Date:    "2025-12-08",
		Upvotes: 1540,
		Tags:    []string{"Diffusion Models", "Synthetic Data", "Generative AI"},
	},
	{
		ID:       "2312.21003",
		Title:    "AgentBench: Evaluating Long-Horizon Autonomous Agents",
		Authors:  []string{"Lucas Meyer", "Ananya Rao", "et al."},
		Abstract: "We introduce AgentBench, a benchmark for evaluating long-horizon reasoning and planning in autonomous LLM-based agents.",
		Summary:  "AgentBench evaluates agents on tasks lasting hundreds of steps, exposing compounding errors and reward hacking that short benchmarks miss.",
		KeyPoints: []string{
			"Benchmarks agents over long task horizons.",
			"Includes web, coding, and tool-use tasks.",
			"Reveals weaknesses hidden by short tasks.",
			"Open-source evaluation framework.",
		},
		Impact:  "Pushes the community toward more realistic evaluation of autonomous agents.",
		Links:   map[string]string{"github": "https://github.com/agentbench"},
		Date:    "2025-12-09",
		Upvotes: 1760,
		Tags:    []string{"Agents", "Evaluation", "LLMs"},
	},
	{
		ID:       "2312.21077",
		Title:    "Instruction Tuning with Preference Graphs",
		Authors:  []string{"Wei Liu", "Sofia Alvarez"},
		Abstract: "We propose preference graphs as a richer alternative to pairwise preference data for instruction tuning.",
		Summary:  "Instead of binary comparisons, this work models human feedback as graphs, capturing nuanced preferences and improving alignment stability.",
		KeyPoints: []string{
			"Generalizes pairwise preferences to graphs.",
			"Improves alignment consistency.",
			"Reduces reward model overfitting.",
			"Compatible with existing RLHF pipelines.",
		},
		Impact:  "Improves the robustness of alignment techniques used in modern LLM training.",
		Links:   map[string]string{"project": "https://preference-graphs.ai/"},
		Date:    "2025-12-09",
		Upvotes: 890,
		Tags:    []string{"Alignment", "RLHF", "Instruction Tuning"},
	},
	{
		ID:       "2312.21192",
		Title:    "Neural Compression for On-Device LLMs",
		Authors:  []string{"Markus Klein", "Yuki Sato", "et al."},
		Abstract: "We introduce a neural compression technique enabling LLM inference on consumer-grade mobile devices.",
		Summary:  "Combining low-rank adapters, quantization, and learned sparsity, this approach enables sub-2GB models with minimal accuracy loss.",
		KeyPoints: []string{
			"Enables LLM inference on mobile devices.",
			"Combines compression techniques synergistically.",
			"Minimal degradation on reasoning benchmarks.",
			"Demonstrated on Android hardware.",
		},
		Impact:  "Accelerates the shift toward private, on-device AI assistants.",
		Links:   map[string]string{"github": "https://github.com/mobile-llm-compression"},
		Date:    "2025-12-09",
		Upvotes: 2210,
		Tags:    []string{"Model Compression", "On-Device AI", "LLMs"},
	},
	{
		ID:       "2312.22015",
		Title:    "World Models for Robotics via Video Pretraining",
		Authors:  []string{"Hannah Brooks", "Pierre Dubois"},
		Abstract: "We show that large-scale video pretraining produces transferable world models for robotic control.",
		Summary:  "By training on internet-scale video, the model learns intuitive physics that transfers to real robotic manipulation with minimal fine-tuning.",
		KeyPoints: []string{
			"Video-pretrained world models for robotics.",
			"Zero-shot transfer to manipulation tasks.",
			"Reduced need for simulator data.",
			"Strong performance on real robots.",
		},
		Impact:  "Bridges the gap between internet-scale learning and embodied intelligence.",
		Links:   map[string]string{"project": "https://video-world-models.ai/"},
		Date:    "2025-12-10",
		Upvotes: 1980,
		Tags:    []string{"Robotics", "World Models", "Video"},
	},
	{
		ID:       "2312.22089",
		Title:    "Constitutional AI Beyond Text",
		Authors:  []string{"OpenAI Alignment Team"},
		Abstract: "We extend Constitutional AI principles to multimodal systems involving images, audio, and video.",
		Summary:  "This work formalizes safety rules for multimodal outputs, demonstrating improved safety without heavy human labeling.",
		KeyPoints: []string{
			"Extends Constitutional AI to multimodal outputs.",
			"Reduces reliance on human moderation.",
			"Improves safety consistency.",
			"Evaluated on image and video tasks.",
		},
		Impact:  "Sets a foundation for safer multimodal generative systems.",
		Links:   map[string]string{"project": "https://openai.com/research/constitutional-multimodal"},
		Date:    "2025-12-10",
		Upvotes: 3050,
		Tags:    []string{"AI Safety", "Multimodal", "Alignment"},
	},
	{
		ID:       "2312.22134",
		Title:    "Sparse Mixture-of-Experts Revisited",
		Authors:  []string{"Tomáš Novák", "Elena Petrova"},
		Abstract: "We revisit sparse Mixture-of-Experts models and analyze their efficiency at trillion-token scale.",
		Summary:  "The authors show that routing stability, not expert count, is the dominant factor for MoE performance.",
		KeyPoints: []string{
			"Large-scale MoE training analysis.",
			"Routing stability is key to performance.",
			"Improves compute efficiency.",
			"Practical routing regularization techniques.",
		},
		Impact:  "Influences the next generation of ultra-large language models.",
		Links:   map[string]string{"github": "https://github.com/sparse-moe"},
		Date:    "2025-12-10",
		Upvotes: 1670,
		Tags:    []string{"MoE", "Scalable Models", "LLMs"},
	},
	{
		ID:       "2312.23005",
		Title:    "Evaluating LLM Honesty Under Adversarial Pressure",
		Authors:  []string{"Rachel Kim", "Omar Haddad"},
		Abstract: "We study how LLMs respond when explicitly threatened or incentivized to lie.",
		Summary:  "This paper finds that models systematically change behavior under adversarial framing, revealing gaps in current alignment methods.",
		KeyPoints: []string{
			"Introduces adversarial honesty tests.",
			"Models degrade under coercive prompts.",
			"Highlights alignment blind spots.",
			"Public benchmark released.",
		},
		Impact:  "Raises important concerns about LLM deployment in high-stakes environments.",
		Links:   map[string]string{"project": "https://llm-honesty.ai/"},
		Date:    "2025-12-11",
		Upvotes: 2450,
		Tags:    []string{"AI Safety", "Evaluation", "Alignment"},
	},
	{
		ID:       "2312.23061",
		Title:    "Self-Refining Code Models",
		Authors:  []string{"James O'Neill", "Priya Natarajan"},
		Abstract: "We propose a framework where code LLMs iteratively improve by testing and refactoring their own outputs.",
		Summary:  "The model generates code, executes tests, analyzes failures, and refines solutions without human intervention.",
		KeyPoints: []string{
			"Closed-loop code refinement.",
			"Improves pass@k on coding benchmarks.",
			"Reduces need for human feedback.",
			"Works with existing code LLMs.",
		},
		Impact:  "Moves code generation toward autonomous software development agents.",
		Links:   map[string]string{"github": "https://github.com/self-refining-code"},
		Date:    "2025-12-11",
		Upvotes: 3120,
		Tags:    []string{"Code Generation", "Agents", "LLMs"},
	},
	{
		ID:       "2312.23118",
		Title:    "Language Models as Social Simulators",
		Authors:  []string{"Natalie Foster", "Miguel Santos"},
		Abstract: "We explore the use of LLMs as simulators of human social behavior.",
		Summary:  "LLMs reproduce emergent social patterns such as conformity, polarization, and cooperation when placed in multi-agent environments.",
		KeyPoints: []string{
			"Simulates group social dynamics.",
			"Emergent behaviors observed.",
			"Useful for policy experimentation.",
			"Ethical implications discussed.",
		},
		Impact:  "Positions LLMs as tools for social science research, with cautionary notes.",
		Links:   map[string]string{"project": "https://social-simulators.ai/"},
		Date:    "2025-12-11",
		Upvotes: 1580,
		Tags:    []string{"Social Simulation", "Multi-Agent Systems", "LLMs"},
	},
	{
		ID:       "2312.24002",
		Title:    "Unified Embeddings for Text, Code, and Graphs",
		Authors:  []string{"Chen Yu", "Laura Stein"},
		Abstract: "We propose a unified embedding space for text, code, and graph-structured data.",
		Summary:  "The model enables cross-domain retrieval, allowing natural language queries over codebases and knowledge graphs.",
		KeyPoints: []string{
			"Single embedding space for multiple data types.",
			"Improves cross-domain retrieval.",
			"Trained with contrastive objectives.",
			"Strong zero-shot generalization.",
		},
		Impact:  "Simplifies enterprise search across heterogeneous data sources.",
		Links:   map[string]string{"project": "https://unified-embeddings.ai/"},
		Date:    "2025-12-12",
		Upvotes: 1890,
		Tags:    []string{"Embeddings", "Retrieval", "Multimodal"},
	},
	{
		ID:       "2312.24074",
		Title:    "Energy-Efficient Training of Large Language Models",
		Authors:  []string{"Isabelle Martin", "Rajesh Kumar"},
		Abstract: "We analyze energy consumption in LLM training and propose efficiency-first optimization strategies.",
		Summary:  "The paper demonstrates up to 35% energy reduction using scheduling, adaptive precision, and hardware-aware optimization.",
		KeyPoints: []string{
			"Detailed energy profiling of LLM training.",
			"Adaptive precision strategies.",
			"Hardware-aware scheduling.",
			"Significant carbon footprint reduction.",
		},
		Impact:  "Encourages more sustainable AI development practices.",
		Links:   map[string]string{"project": "https://green-llm.ai/"},
		Date:    "2025-12-12",
		Upvotes: 1340,
		Tags:    []string{"Sustainable AI", "Optimization", "LLMs"},
	},
	{
		ID:       "2312.24119",
		Title:    "Benchmarking Hallucination Detection Methods",
		Authors:  []string{"Kevin Zhou", "Fatima Noor"},
		Abstract: "We benchmark hallucination detection methods across QA, summarization, and RAG settings.",
		Summary:  "The study shows that no single method generalizes well, motivating ensemble-based hallucination detectors.",
		KeyPoints: []string{
			"Comprehensive hallucination benchmark.",
			"Evaluation across tasks.",
			"Shows limits of current detectors.",
			"Proposes ensemble approaches.",
		},
		Impact:  "Provides clarity in a noisy space of hallucination mitigation techniques.",
		Links:   map[string]string{"github": "https://github.com/hallucination-bench"},
		Date:    "2025-12-12",
		Upvotes: 2760,
		Tags:    []string{"Hallucinations", "Evaluation", "LLMs"},
	},
}
